/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package render

import (
	"errors"
	"reflect"
	"testing"

	"pitchdeck/internal/deck"
)

func TestStagingHiddenByDefault(t *testing.T) {
	s := NewStaging(deck.Default())
	if s.Visible() {
		t.Fatalf("staging should start hidden")
	}
	if _, err := s.Instances(); !errors.Is(err, ErrHidden) {
		t.Fatalf("Instances while hidden: %v", err)
	}
}

func TestStagingShowHide(t *testing.T) {
	s := NewStaging(deck.Default())
	if err := s.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	inst, err := s.Instances()
	if err != nil || len(inst) != 12 {
		t.Fatalf("Instances = %d, %v", len(inst), err)
	}
	for i, in := range inst {
		if in.Index != i {
			t.Fatalf("instance %d has index %d", i, in.Index)
		}
		if in.Scene.Background != StagingBackground {
			t.Fatalf("instance %d background %+v", i, in.Scene.Background)
		}
		if len(in.Scene.Hotspots) != 0 {
			t.Fatalf("instance %d is interactive", i)
		}
	}
	s.Hide()
	if s.Visible() {
		t.Fatalf("Hide did not hide")
	}
	if _, err := s.Instances(); err == nil {
		t.Fatalf("instances survive Hide")
	}
}

func TestStagingIgnoresPresentationState(t *testing.T) {
	a := NewStaging(deck.Default())
	b := NewStaging(deck.Default())
	if err := a.Show(); err != nil {
		t.Fatal(err)
	}
	if err := b.Show(); err != nil {
		t.Fatal(err)
	}
	ia, _ := a.Instances()
	ib, _ := b.Instances()
	for i := range ia {
		if !reflect.DeepEqual(ia[i].Scene, ib[i].Scene) {
			t.Fatalf("instance %d differs between stagings", i)
		}
	}
}

func TestStagingRejectsEmptyRegistry(t *testing.T) {
	if err := NewStaging(deck.NewRegistry()).Show(); err == nil {
		t.Fatalf("expected error for empty registry")
	}
}
