// Copyright (c) 2026, the hailodash authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging wraps the standard library slog package with the
// conventions used across hailodash: structured JSON to stderr, module
// and version attributes on every record, log level from the LOG_LEVEL
// environment variable, and source location at debug level.
//
// Supported log levels (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR.
//
// Typical setup in main:
//
//	logging.SetDefaultStructuredLogger("hailodashd", version)
//	slog.Info("server starting", "port", 8080)
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug hailodashd serve
package logging
