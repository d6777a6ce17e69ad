// SPDX-License-Identifier: MPL-2.0

package locator

import "testing"

func TestEpochs_Order(t *testing.T) {
	eps := Epochs()
	if len(eps) != 3 {
		t.Fatalf("Epochs() returned %d epochs, want 3", len(eps))
	}

	// The probe order is a contract: newest convention first.
	want := []Epoch{
		{Name: "dnx", HomeDir: ".dnx", PackagesDir: "runtimes", MonoFormat: "dnx-mono.%s", NativeFormat: "dnx-clr-win-x86.%s"},
		{Name: "k", HomeDir: ".k", PackagesDir: "packages", MonoFormat: "kre-mono.%s", NativeFormat: "kre-clr-win-x86.%s"},
		{Name: "kre", HomeDir: ".kre", PackagesDir: "packages", MonoFormat: "KRE-svr50-x86.%s", NativeFormat: "KRE-svr50-x86.%s"},
	}
	for i, ep := range eps {
		if ep != want[i] {
			t.Errorf("Epochs()[%d] = %+v, want %+v", i, ep, want[i])
		}
	}
}

func TestEpochs_ReturnsCopy(t *testing.T) {
	eps := Epochs()
	eps[0].Name = "mutated"

	if got := Epochs()[0].Name; got != "dnx" {
		t.Errorf("Epochs()[0].Name = %q after caller mutation, want %q", got, "dnx")
	}
}
