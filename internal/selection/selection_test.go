package selection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/coverstrip/coverstrip/internal/model"
	"github.com/coverstrip/coverstrip/internal/store"
)

func TestSetAlbums_FirstLoadSelectsZero(t *testing.T) {
	c := New(nil)

	if c.InitialIndex() != None {
		t.Fatalf("InitialIndex before load = %d, want None", c.InitialIndex())
	}

	c.SetAlbums(model.SeedAlbums())
	if c.InitialIndex() != 0 {
		t.Errorf("InitialIndex after first load = %d, want 0", c.InitialIndex())
	}
}

func TestSetAlbums_EmptySequence(t *testing.T) {
	c := New(nil)
	c.SetAlbums(nil)

	if c.InitialIndex() != None {
		t.Errorf("InitialIndex with empty list = %d, want None", c.InitialIndex())
	}

	if err := c.Select(0); !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Errorf("Select(0) on empty list error = %v, want ErrIndexOutOfRange", err)
	}

	labels, values := c.DetailFields(0)
	if len(labels) != 0 || len(values) != 0 {
		t.Errorf("DetailFields on empty list = (%v, %v), want empty pair", labels, values)
	}
}

func TestSetAlbums_ReclampAfterShrink(t *testing.T) {
	c := New(nil)
	albums := model.SeedAlbums()
	c.SetAlbums(albums)

	if err := c.Select(4); err != nil {
		t.Fatalf("Select(4) failed: %v", err)
	}

	// Shrink to 3 albums: the selection must clamp to count-1.
	c.SetAlbums(albums[:3])
	if c.InitialIndex() != 2 {
		t.Errorf("InitialIndex after shrink = %d, want 2", c.InitialIndex())
	}

	// Idempotent: a second identical SetAlbums changes nothing.
	c.SetAlbums(albums[:3])
	if c.InitialIndex() != 2 {
		t.Errorf("InitialIndex after repeated SetAlbums = %d, want 2", c.InitialIndex())
	}
}

func TestSetAlbums_KeepsValidSelection(t *testing.T) {
	c := New(nil)
	albums := model.SeedAlbums()
	c.SetAlbums(albums)

	if err := c.Select(1); err != nil {
		t.Fatalf("Select(1) failed: %v", err)
	}
	c.SetAlbums(albums[:4])
	if c.InitialIndex() != 1 {
		t.Errorf("InitialIndex = %d, want unchanged 1", c.InitialIndex())
	}
}

func TestSelect_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{name: "first", index: 0},
		{name: "last", index: 4},
		{name: "one past end", index: 5, wantErr: true},
		{name: "negative", index: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			c.SetAlbums(model.SeedAlbums())

			err := c.Select(tt.index)
			if tt.wantErr {
				if !errors.Is(err, store.ErrIndexOutOfRange) {
					t.Fatalf("Select(%d) error = %v, want ErrIndexOutOfRange", tt.index, err)
				}
				if c.InitialIndex() != 0 {
					t.Errorf("failed Select moved index to %d, want 0", c.InitialIndex())
				}
				return
			}

			if err != nil {
				t.Fatalf("Select(%d) failed: %v", tt.index, err)
			}
			if c.InitialIndex() != tt.index {
				t.Errorf("InitialIndex = %d, want %d", c.InitialIndex(), tt.index)
			}
		})
	}
}

func TestSelect_FiresDetailRefresh(t *testing.T) {
	var refreshed []int
	c := New(func(i int) { refreshed = append(refreshed, i) })
	c.SetAlbums(model.SeedAlbums())

	if err := c.Select(3); err != nil {
		t.Fatalf("Select(3) failed: %v", err)
	}
	_ = c.Select(9) // invalid, must not fire

	if !reflect.DeepEqual(refreshed, []int{3}) {
		t.Errorf("detail refreshes = %v, want [3]", refreshed)
	}
}

func TestDetailFields_FixedOrder(t *testing.T) {
	c := New(nil)
	c.SetAlbums(model.SeedAlbums())

	if err := c.Select(2); err != nil {
		t.Fatalf("Select(2) failed: %v", err)
	}

	labels, values := c.DetailFields(2)
	wantLabels := []string{"Artist", "Album", "Genre", "Year"}
	wantValues := []string{"Sting", "Nothing Like The Sun", "Pop", "1999"}

	if !reflect.DeepEqual(labels, wantLabels) {
		t.Errorf("labels = %v, want %v", labels, wantLabels)
	}
	if !reflect.DeepEqual(values, wantValues) {
		t.Errorf("values = %v, want %v", values, wantValues)
	}
}

func TestDetailFields_InvalidIndex(t *testing.T) {
	c := New(nil)
	c.SetAlbums(model.SeedAlbums())

	for _, index := range []int{-1, 5, 42} {
		labels, values := c.DetailFields(index)
		if len(labels) != 0 || len(values) != 0 {
			t.Errorf("DetailFields(%d) = (%v, %v), want empty pair", index, labels, values)
		}
	}
}

func TestProvider(t *testing.T) {
	c := New(nil)
	albums := model.SeedAlbums()
	c.SetAlbums(albums)

	if c.Count() != 5 {
		t.Errorf("Count() = %d, want 5", c.Count())
	}
	if got := c.ItemAt(2); got.Artist != "Sting" {
		t.Errorf("ItemAt(2).Artist = %q, want %q", got.Artist, "Sting")
	}
	if got := c.ItemAt(99); got != (model.Album{}) {
		t.Errorf("ItemAt(99) = %+v, want zero Album", got)
	}

	c.OnTap(4)
	if c.InitialIndex() != 4 {
		t.Errorf("InitialIndex after tap = %d, want 4", c.InitialIndex())
	}

	// Tap on an invalid index is ignored.
	c.OnTap(99)
	if c.InitialIndex() != 4 {
		t.Errorf("InitialIndex after invalid tap = %d, want 4", c.InitialIndex())
	}
}
