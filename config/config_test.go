/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config_test

import (
	"testing"

	"go.uber.org/zap"

	"dirpx.dev/mdx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.ReclaimCollected != config.DefaultReclaimCollected {
		t.Fatalf("ReclaimCollected = %v, want %v", got.ReclaimCollected, config.DefaultReclaimCollected)
	}
	if got.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", got.MaxDepth, config.DefaultMaxDepth)
	}
	if got.Logger != nil {
		t.Fatalf("Logger = %v, want nil", got.Logger)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithReclaimCollected(t *testing.T) {
	c := config.NewConfig(config.WithReclaimCollected(false))
	if c.ReclaimCollected {
		t.Fatalf("ReclaimCollected = %v, want false", c.ReclaimCollected)
	}

	c2 := config.NewConfig(config.WithReclaimCollected(true))
	if !c2.ReclaimCollected {
		t.Fatalf("ReclaimCollected = %v, want true", c2.ReclaimCollected)
	}
}

func TestWithMaxDepth_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(3))
	if c.MaxDepth != 3 {
		t.Fatalf("MaxDepth = %d, want 3", c.MaxDepth)
	}
}

func TestWithMaxDepth_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(-1))
	if c.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want default %d", c.MaxDepth, config.DefaultMaxDepth)
	}
}

func TestWithLogger(t *testing.T) {
	l := zap.NewExample()
	c := config.NewConfig(config.WithLogger(l))
	if c.Logger != l {
		t.Fatalf("Logger not applied")
	}
	if c.Log() != l {
		t.Fatalf("Log() did not return configured logger")
	}
	if config.DefaultConfig().Log() == nil {
		t.Fatalf("Log() on default config returned nil")
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithReclaimCollected(true),
		config.WithReclaimCollected(false),
		config.WithMaxDepth(2),
		config.WithMaxDepth(5),
	)

	if c.ReclaimCollected {
		t.Errorf("ReclaimCollected = %v, want false (last option wins)", c.ReclaimCollected)
	}
	if c.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want 5 (last option wins)", c.MaxDepth)
	}
}
