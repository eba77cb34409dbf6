package stringutils

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

func TestLastTokenByte(t *testing.T) {
	for _, tt := range []struct {
		s    string
		sep  byte
		want string
	}{
		{s: "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/vnet/subnets/default", sep: '/', want: "default"},
		{s: "main.ensureResourceGroup", sep: '.', want: "ensureResourceGroup"},
		{s: "createAll", sep: '.', want: "createAll"},
	} {
		result := LastTokenByte(tt.s, tt.sep)
		if result != tt.want {
			t.Errorf("want %s, got %s", tt.want, result)
		}
	}
}
