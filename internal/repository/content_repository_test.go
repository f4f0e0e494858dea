package repository

import (
    "context"
    "testing"

    "github.com/luxedrive/rental-api/internal/model"
)

// Slot bounds are validated before any query runs, so these tests work
// against a repo with no database handle.

func TestSlotCount(t *testing.T) {
    r := NewContentRepo(nil, 4, 6)

    if got := r.SlotCount(model.GalleryDesktop); got != 4 {
        t.Errorf("SlotCount(desktop) = %d, want 4", got)
    }
    if got := r.SlotCount(model.GalleryMobile); got != 6 {
        t.Errorf("SlotCount(mobile) = %d, want 6", got)
    }
    if got := r.SlotCount("tablet"); got != 0 {
        t.Errorf("SlotCount(tablet) = %d, want 0", got)
    }
}

func TestPutGallerySlotBounds(t *testing.T) {
    r := NewContentRepo(nil, 4, 6)

    cases := []struct {
        name    string
        variant string
        slot    int
    }{
        {"desktop slot at count", model.GalleryDesktop, 4},
        {"desktop negative slot", model.GalleryDesktop, -1},
        {"mobile slot past count", model.GalleryMobile, 6},
        {"unknown variant", "tablet", 0},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            p := model.GalleryPhoto{Variant: tc.variant, Slot: tc.slot, ImageURL: "x.jpg"}
            if err := r.PutGallerySlot(context.Background(), p); err != ErrSlotOutOfRange {
                t.Errorf("PutGallerySlot(%s, %d) = %v, want ErrSlotOutOfRange", tc.variant, tc.slot, err)
            }
        })
    }
}
