/*
 * midas
 *
 * Copyright 2026 The midas authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import "testing"

func TestConfig(t *testing.T) {
	if res := Str(MaxCallDepth); res != "1000" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(MaxCallDepth); res != 1000 {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestConfigIsACopyOfDefaults(t *testing.T) {
	Config[MaxCallDepth] = 5

	if DefaultConfig[MaxCallDepth] != 1000 {
		t.Error("modifying Config must not leak back into DefaultConfig")
	}

	Config[MaxCallDepth] = DefaultConfig[MaxCallDepth]
}
