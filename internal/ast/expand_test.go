package ast

import (
	stderrors "errors"
	"testing"

	"go.uber.org/multierr"

	"github.com/tangzhangming/tracy/internal/errors"
)

func staticResolver(matches map[string][]string) MatchResolver {
	return ResolverFunc(func(ap *AttachPoint) ([]string, error) {
		m, ok := matches[ap.Name()]
		if !ok {
			return nil, stderrors.New("no such symbol")
		}
		return m, nil
	})
}

func TestExpandProbe(t *testing.T) {
	arena := NewArena(0)
	begin := newAP(arena, AttachPointFields{Provider: "BEGIN"})
	wild := newAP(arena, AttachPointFields{Provider: "kprobe", Func: "vfs_*", Expansion: ExpansionFull})
	usdt := newAP(arena, AttachPointFields{Provider: "usdt", Target: "/usr/bin/app", Func: "*", Expansion: ExpansionMulti})
	probe := newProbe(arena, begin, wild, usdt)

	r := staticResolver(map[string][]string{
		"kprobe:vfs_*":        {"vfs_read", "ext4:ext4_file_read_iter"},
		"usdt:/usr/bin/app:*": {"/usr/bin/app:myprovider:myprobe"},
	})
	if err := ExpandProbe(arena, probe, r); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	expected := []string{
		"BEGIN",
		"kprobe:vfs_read",
		"kprobe:ext4:ext4_file_read_iter",
		"usdt:/usr/bin/app:myprovider:myprobe",
	}
	if len(probe.AttachPoints) != len(expected) {
		t.Fatalf("expected %d attach points, got %d", len(expected), len(probe.AttachPoints))
	}
	for i, name := range expected {
		if got := probe.AttachPoints[i].Name(); got != name {
			t.Errorf("attach point %d: expected %q, got %q", i, name, got)
		}
	}
	if probe.AttachPoints[0] != begin {
		t.Errorf("attach points without expansion must be kept as is")
	}
}

func TestExpandProbeIgnoreInvalid(t *testing.T) {
	arena := NewArena(0)
	missing := arena.NewAttachPointWith("kprobe:nope*", true,
		AttachPointFields{Provider: "kprobe", Func: "nope*", Expansion: ExpansionFull}, testLoc)
	empty := arena.NewAttachPointWith("kprobe:none*", true,
		AttachPointFields{Provider: "kprobe", Func: "none*", Expansion: ExpansionFull}, testLoc)
	keep := newAP(arena, AttachPointFields{Provider: "END"})
	probe := newProbe(arena, missing, empty, keep)

	r := staticResolver(map[string][]string{"kprobe:none*": nil})
	if err := ExpandProbe(arena, probe, r); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(probe.AttachPoints) != 1 || probe.AttachPoints[0] != keep {
		t.Errorf("ignored attach points should be dropped, got %s", probe.Name())
	}
}

func TestExpandProbeErrorsLeaveProbeUnchanged(t *testing.T) {
	arena := NewArena(0)
	ok := newAP(arena, AttachPointFields{Provider: "kprobe", Func: "a*", Expansion: ExpansionFull})
	bad := newAP(arena, AttachPointFields{Provider: "kprobe", Func: "b*", Expansion: ExpansionFull})
	probe := newProbe(arena, ok, bad)

	r := staticResolver(map[string][]string{"kprobe:a*": {"a1"}, "kprobe:b*": nil})
	if err := ExpandProbe(arena, probe, r); err == nil {
		t.Fatalf("expected error for attach point without matches")
	}
	if len(probe.AttachPoints) != 2 || probe.AttachPoints[0] != ok || probe.AttachPoints[1] != bad {
		t.Errorf("probe must keep its original attach points on error")
	}

	r = staticResolver(map[string][]string{"kprobe:a*": {"a1"}})
	err := ExpandProbe(arena, probe, r)
	if err == nil || errors.IsInternal(err) {
		t.Fatalf("expected resolve error, got %v", err)
	}
}

func TestExpandProgram(t *testing.T) {
	arena := NewArena(0)
	p1 := newProbe(arena, newAP(arena, AttachPointFields{Provider: "kprobe", Func: "x*", Expansion: ExpansionFull}))
	p2 := newProbe(arena, newAP(arena, AttachPointFields{Provider: "kprobe", Func: "y*", Expansion: ExpansionFull}))
	p3 := newProbe(arena, newAP(arena, AttachPointFields{Provider: "kprobe", Func: "z*", Expansion: ExpansionFull}))
	prog := arena.NewProgram("", nil, nil, []*Probe{p1, p2, p3}, testLoc)

	r := staticResolver(map[string][]string{"kprobe:y*": {"y1", "y2"}})
	err := ExpandProgram(arena, prog, r)
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("expected 2 errors, got %d: %v", n, err)
	}
	if p2.Name() != "kprobe:y1,kprobe:y2" {
		t.Errorf("resolvable probe should still expand, got %q", p2.Name())
	}
}

func TestExpandProgramInternalError(t *testing.T) {
	arena := NewArena(0)
	bogus := newProbe(arena, newAP(arena, AttachPointFields{Provider: "bogus", Func: "*", Expansion: ExpansionFull}))
	later := newProbe(arena, newAP(arena, AttachPointFields{Provider: "kprobe", Func: "l*", Expansion: ExpansionFull}))
	prog := arena.NewProgram("", nil, nil, []*Probe{bogus, later}, testLoc)

	r := ResolverFunc(func(ap *AttachPoint) ([]string, error) {
		return []string{"m:n"}, nil
	})
	err := ExpandProgram(arena, prog, r)
	ie, ok := errors.AsInternal(err)
	if !ok || ie.Code != errors.B0001 {
		t.Fatalf("expected B0001 internal error, got %v", err)
	}
	if later.Name() != "kprobe:l*" {
		t.Errorf("expansion must stop at the internal error, got %q", later.Name())
	}
}
