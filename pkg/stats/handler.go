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

package stats

import (
	"net/http"

	"github.com/hailodash/hailodash/pkg/serializer"
)

// HandleStats serves the latest snapshot as JSON. Before the first
// refresh completes it answers 503 so load balancers and the dashboard
// can tell "not ready" from "all probes failed".
func (p *Publisher) HandleStats(w http.ResponseWriter, r *http.Request) {
	snap := p.Latest()
	if snap == nil {
		serializer.RespondError(w, http.StatusServiceUnavailable, "no snapshot available yet")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, snap)
}
