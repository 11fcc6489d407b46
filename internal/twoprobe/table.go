package twoprobe

import (
	"math"
	"math/bits"
	"unsafe"
)

// bitmapWordBits is the number of occupancy flags packed into one bitmap word.
const bitmapWordBits = 64

// CapacityError reports a requested table capacity that cannot be honored:
// non-positive, or large enough that the backing allocation or the bitmap
// index arithmetic would overflow. It is returned before anything is
// allocated.
type CapacityError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return "capacity error in field " + e.Field + ": " + e.Message
}

// slot is one cell of the table. key and result are only meaningful while
// the corresponding occupancy bit is set.
type slot[K comparable, V any] struct {
	key    K
	result V
}

// table is fixed-size random-access storage for capacity slots plus an
// occupancy bitmap. The slot backing array is allocated lazily on the first
// write and never grows or shrinks afterwards.
type table[K comparable, V any] struct {
	capacity int
	slots    []slot[K, V]
	occupied []uint64
}

// validateCapacity checks capacity eagerly, before any allocation: it must
// be positive, the slot allocation size must fit the platform int, and the
// rounded-up bitmap word count must not overflow.
func validateCapacity[K comparable, V any](capacity int) error {
	if capacity <= 0 {
		return &CapacityError{Field: "Capacity", Message: "must be greater than 0"}
	}

	var probe slot[K, V]
	if size := int(unsafe.Sizeof(probe)); size > 0 && capacity > math.MaxInt/size {
		return &CapacityError{Field: "Capacity", Message: "slot allocation size overflows int"}
	}

	if capacity > math.MaxInt-(bitmapWordBits-1) {
		return &CapacityError{Field: "Capacity", Message: "occupancy bitmap index overflows int"}
	}

	return nil
}

// newTable validates capacity and returns an unallocated table. Storage is
// deferred until the first write so that constructing a cache that is never
// called costs nothing beyond the validation.
func newTable[K comparable, V any](capacity int) (*table[K, V], error) {
	if err := validateCapacity[K, V](capacity); err != nil {
		return nil, err
	}

	return &table[K, V]{capacity: capacity}, nil
}

func (t *table[K, V]) ensureAllocated() {
	if t.slots != nil {
		return
	}

	t.slots = make([]slot[K, V], t.capacity)
	t.occupied = make([]uint64, (t.capacity+bitmapWordBits-1)/bitmapWordBits)
}

// isOccupied reports whether slot i holds a live entry. An unallocated
// table has no occupied slots.
func (t *table[K, V]) isOccupied(i int) bool {
	if t.slots == nil {
		return false
	}

	return t.occupied[i/bitmapWordBits]&(1<<uint(i%bitmapWordBits)) != 0
}

// read returns the key/result pair stored at slot i. It must only be called
// for a slot that isOccupied reported true for; every call site guards it.
func (t *table[K, V]) read(i int) (K, V) {
	return t.slots[i].key, t.slots[i].result
}

// write stores key and result at slot i and then flips the occupancy bit,
// in that order. A slot is never observable as occupied before both fields
// are fully written.
func (t *table[K, V]) write(i int, key K, result V) {
	t.ensureAllocated()

	t.slots[i].key = key
	t.slots[i].result = result
	t.occupied[i/bitmapWordBits] |= 1 << uint(i%bitmapWordBits)
}

// len counts occupied slots.
func (t *table[K, V]) len() int {
	total := 0
	for _, word := range t.occupied {
		total += bits.OnesCount64(word)
	}

	return total
}
