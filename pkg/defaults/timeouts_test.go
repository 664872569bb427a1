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

package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The slowest single tool bound must fit inside the server write
// timeout, or a stalled probe could surface as truncated responses.
func TestToolBoundsFitServerBudget(t *testing.T) {
	t.Parallel()

	assert.Less(t, IdentifyTimeout, ServerWriteTimeout)
	assert.Less(t, PerfQueryTimeout, ServerWriteTimeout)
	assert.Less(t, ProbeCommandTimeout, ServerWriteTimeout)
	assert.Less(t, SentinelRequestTimeout, RefreshInterval)
}
