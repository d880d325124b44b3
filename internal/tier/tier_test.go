package tier

import "testing"

func TestPlanLabels(t *testing.T) {
	cases := map[int]string{
		1:  "Basic Monthly",
		2:  "Basic One-time",
		3:  "Medium Monthly",
		4:  "Medium One-time",
		5:  "Hardcore Monthly",
		6:  "Hardcore One-time",
		0:  "Free",
		99: "Free",
	}
	for planID, expect := range cases {
		if got := PlanLabel(planID); got != expect {
			t.Fatalf("plan %d: expected %q, got %q", planID, expect, got)
		}
	}
}

func TestPlanOrdinals(t *testing.T) {
	cases := map[int]int{
		0: Free, 1: Basic, 2: Basic, 3: Medium, 4: Medium, 5: Hardcore, 6: Hardcore, 42: Free,
	}
	for planID, expect := range cases {
		if got := PlanOrdinal(planID); got != expect {
			t.Fatalf("plan %d: expected ordinal %d, got %d", planID, expect, got)
		}
	}
}

func TestContentOrdinals(t *testing.T) {
	if ContentOrdinal("BASIC") != Basic || ContentOrdinal("MEDIUM") != Medium || ContentOrdinal("HARDCORE") != Hardcore {
		t.Fatalf("content label mapping broken")
	}
	if ContentOrdinal("weird") != Basic {
		t.Fatalf("unknown labels should fall back to Basic")
	}
}

func TestAccessPolicy(t *testing.T) {
	// Medium subscriber reaches Basic and Medium, never Hardcore.
	if !CanAccess(Medium, Basic) || !CanAccess(Medium, Medium) {
		t.Fatalf("medium viewer should reach basic and medium content")
	}
	if CanAccess(Medium, Hardcore) {
		t.Fatalf("medium viewer must not reach hardcore content")
	}
	// Free subscribers reach nothing above their ordinal.
	if CanAccess(Free, Basic) {
		t.Fatalf("free viewer must not reach basic content")
	}
	// Anonymous viewers are pinned to Basic-only.
	if !CanAccess(AnonymousOrdinal(), Basic) || CanAccess(AnonymousOrdinal(), Medium) {
		t.Fatalf("anonymous viewers should see exactly basic content")
	}
}
