package viewer

import (
	"image"
	"testing"
)

func TestRequestIgnoredWhileBusy(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	r := NewRegenerator(func(seed int64) []image.Image {
		calls++
		<-release
		return []image.Image{image.NewRGBA(image.Rect(0, 0, int(seed), int(seed)))}
	})

	if _, _, v := r.Latest(); v != 0 {
		t.Fatalf("version %d before any build", v)
	}

	if !r.Request(3) {
		t.Fatal("first request refused")
	}
	if r.Request(4) {
		t.Error("second request accepted while the first was running")
	}
	if !r.Busy() {
		t.Error("not busy during a build")
	}

	close(release)
	r.Wait()

	frames, seed, v := r.Latest()
	if v != 1 || seed != 3 || len(frames) != 1 || frames[0].Bounds().Dx() != 3 {
		t.Errorf("Latest() = %d frames, seed %d, version %d", len(frames), seed, v)
	}
	if calls != 1 {
		t.Errorf("built %d times, want 1", calls)
	}
	if r.Busy() {
		t.Error("still busy after the build finished")
	}

	if !r.Request(5) {
		t.Fatal("request after the build finished refused")
	}
	r.Wait()
	if _, seed, v := r.Latest(); v != 2 || seed != 5 {
		t.Errorf("second build gave seed %d, version %d", seed, v)
	}
}
