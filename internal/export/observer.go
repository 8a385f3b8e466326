/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import "pitchdeck/internal/telemetry"

// TelemetryObserver reports export outcomes as telemetry events. A nil
// client falls back to telemetry.Default at report time.
func TelemetryObserver(c *telemetry.Client) Observer {
	return ObserverFunc(func(r Result) {
		cl := c
		if cl == nil {
			cl = telemetry.Default()
		}
		cl.Export(r.Outcome.String(), r.Pages, r.Elapsed)
	})
}

// Observers fans one result out to several observers in order. Nil
// entries are skipped.
func Observers(obs ...Observer) Observer {
	return ObserverFunc(func(r Result) {
		for _, o := range obs {
			if o != nil {
				o.ExportFinished(r)
			}
		}
	})
}
