package system

import (
	"testing"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
)

type fakeSource struct {
	frames []PointerState
	keys   []Shortcuts
	i      int
}

func (f *fakeSource) Pointer() PointerState {
	if f.i < len(f.frames) {
		return f.frames[f.i]
	}
	return PointerState{}
}

func (f *fakeSource) Shortcuts() Shortcuts {
	var k Shortcuts
	if f.i < len(f.keys) {
		k = f.keys[f.i]
	}
	f.i++
	return k
}

func commands(w *ecs.World) []component.Command {
	var out []component.Command
	for _, evt := range w.Events().Take(ecs.EventCommand) {
		out = append(out, evt.Data.(component.Command))
	}
	return out
}

func TestInputSystemGestures(t *testing.T) {
	tests := []struct {
		name    string
		current component.Dimension
		frames  []PointerState
		keys    []Shortcuts
		want    []component.Command
	}{
		{
			name: "swipe_up",
			frames: []PointerState{
				{X: 10, Y: 400, Pressed: true},
				{X: 10, Y: 320, Pressed: true},
				{X: 10, Y: 250, Pressed: false},
			},
			want: []component.Command{component.SwitchTo(component.DimensionBack)},
		},
		{
			name: "tap",
			frames: []PointerState{
				{X: 10, Y: 400, Pressed: true},
				{X: 10, Y: 400, Pressed: false},
			},
			want: []component.Command{component.Fire()},
		},
		{
			name:   "idle",
			frames: []PointerState{{}, {}, {}},
		},
		{
			name:   "keyboard_back_then_fire",
			frames: []PointerState{{}, {}},
			keys:   []Shortcuts{{SwitchBack: true}, {Fire: true}},
			want:   []component.Command{component.SwitchTo(component.DimensionBack), component.Fire()},
		},
		{
			name:    "keyboard_switch_to_current_ignored",
			current: component.DimensionBack,
			frames:  []PointerState{{}},
			keys:    []Shortcuts{{SwitchBack: true}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			scene, _ := entity.SceneOf(w)
			scene.Dimension.Current = tc.current

			src := &fakeSource{frames: tc.frames, keys: tc.keys}
			sys := NewInputSystem(src, nil)

			var got []component.Command
			for range tc.frames {
				sys.Update(w)
				got = append(got, commands(w)...)
			}

			if len(got) != len(tc.want) {
				t.Fatalf("commands = %+v, want %+v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("commands = %+v, want %+v", got, tc.want)
				}
			}
		})
	}
}

func TestInputSystemThresholdFollowsReload(t *testing.T) {
	w, specs := newTestWorld(t)
	drag := []PointerState{
		{X: 10, Y: 400, Pressed: true},
		{X: 10, Y: 340, Pressed: false},
	}

	run := func(sys *InputSystem, src *fakeSource) []component.Command {
		var got []component.Command
		for range src.frames {
			sys.Update(w)
			got = append(got, commands(w)...)
		}
		return got
	}

	src := &fakeSource{frames: drag}
	sys := NewInputSystem(src, specs)
	if got := run(sys, src); len(got) != 1 || got[0] != component.Fire() {
		t.Fatalf("60px drag at threshold %v = %+v, want fire", specs.Scene.SwipeThreshold, got)
	}

	specs.Scene.SwipeThreshold = 50
	src.frames, src.i = drag, 0
	if got := run(sys, src); len(got) != 1 || got[0] != component.SwitchTo(component.DimensionBack) {
		t.Fatalf("60px drag at threshold 50 = %+v, want switch to back", got)
	}
	if sys.Translator.Threshold != 50 {
		t.Fatalf("Threshold = %v, want 50", sys.Translator.Threshold)
	}
}
