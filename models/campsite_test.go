package models

import (
	"errors"
	"testing"
)

func TestCampsiteCatalog(t *testing.T) {
	sites := Campsites()
	if len(sites) != 16 {
		t.Fatalf("catalog has %d sites, want 16", len(sites))
	}
	if sites[0].ID != "1a" || sites[len(sites)-1].ID != "Gidgea Flats" {
		t.Errorf("catalog order = %q .. %q, want 1a .. Gidgea Flats", sites[0].ID, sites[len(sites)-1].ID)
	}

	ids := CampsiteIDs()
	if len(ids) != len(sites) {
		t.Fatalf("CampsiteIDs() returned %d ids, want %d", len(ids), len(sites))
	}
	for i, cs := range sites {
		if ids[i] != cs.ID {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], cs.ID)
		}
	}

	// Callers must not be able to mutate the catalog through the copy.
	sites[0].ID = "mutated"
	if Campsites()[0].ID != "1a" {
		t.Error("Campsites() exposed the underlying catalog slice")
	}
}

func TestCapacityOf(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"1a", 4},
		{"Sandy", 10},
		{"Jerrys", 4},
		{"Gidgea Flats", 30},
	}
	for _, tt := range tests {
		got, err := CapacityOf(tt.id)
		if err != nil {
			t.Errorf("CapacityOf(%q) error = %v", tt.id, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CapacityOf(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}

	if _, err := CapacityOf("nowhere"); !errors.Is(err, ErrUnknownCampsite) {
		t.Errorf("CapacityOf(nowhere) error = %v, want ErrUnknownCampsite", err)
	}
	if CampsiteExists("nowhere") {
		t.Error("CampsiteExists(nowhere) = true, want false")
	}
}
