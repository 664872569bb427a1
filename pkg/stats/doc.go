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

// Package stats assembles probe sections into timestamped snapshots
// and publishes them for concurrent readers.
//
// A Publisher owns the refresh loop. Each cycle runs every registered
// probe, collects whatever each one managed to read, and swaps in a
// new immutable Snapshot. Probe failures degrade to empty sections;
// they never abort the cycle or disturb the previously published
// snapshot.
package stats
