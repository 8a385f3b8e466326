/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"testing"

	"pitchdeck/internal/export"
)

func TestBridgeForwardsOnceSet(t *testing.T) {
	var b Bridge
	b.ExportFinished(export.Result{Outcome: export.OutcomeSaved})
	var got []export.Result
	b.set(func(r export.Result) { got = append(got, r) })
	b.ExportFinished(export.Result{Outcome: export.OutcomeFellBack})
	if len(got) != 1 || got[0].Outcome != export.OutcomeFellBack {
		t.Fatalf("got %+v", got)
	}
}
