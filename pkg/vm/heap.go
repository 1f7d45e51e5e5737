package vm

// Heap bank geometry: 128 banks of 64 bytes each, mapped starting at
// HeapBase. HeapEnd is the address of the last valid byte in the region.
const (
	HeapBase      = 0xB700
	HeapBankSize  = 64
	HeapBankCount = 128
	HeapEnd       = HeapBase + HeapBankSize*HeapBankCount - 1 // 0xD6FF

	bankFree = 255
)

// bankMeta mirrors the original allocator's per-bank record, minus the
// backward-scan fields that made its free-time splice unreliable.
// firstBank and next both use bankFree (255) as a sentinel.
type bankMeta struct {
	firstBank uint8  // index of this allocation's first bank, or bankFree
	banksUsed uint8  // banks spanned by this allocation (valid on firstBank itself)
	next      uint8  // index of the next live allocation's first bank, or bankFree
	value     uint32 // the bank's stored word, masked to the access width on write
}

// heap is the bank allocator for the 0xB700-0xD6FF region. Banks belonging
// to the same allocation all carry that allocation's firstBank/banksUsed,
// which lets Allocate and Free walk backward one allocation at a time
// instead of one bank at a time, fixing the ambiguity that made the
// original's backward scan find the wrong predecessor.
type heap struct {
	banks [HeapBankCount]bankMeta
}

func (h *heap) reset() {
	for i := range h.banks {
		h.banks[i] = bankMeta{firstBank: bankFree, next: bankFree}
	}
}

// bankCountFor returns the number of whole banks needed to hold size
// bytes, or 0 if size is zero or exceeds the region's total capacity.
func bankCountFor(size uint32) uint8 {
	if size == 0 || size > HeapBankSize*HeapBankCount {
		return 0
	}
	n := size / HeapBankSize
	if size%HeapBankSize != 0 {
		n++
	}
	return uint8(n)
}

// firstLiveFrom returns the index of the first live bank at or after
// start, or bankFree if none remain.
func (h *heap) firstLiveFrom(start int) uint8 {
	for i := start; i < HeapBankCount; i++ {
		if h.banks[i].firstBank != bankFree {
			return uint8(i)
		}
	}
	return bankFree
}

// fixPredecessor rewrites the next pointer of the allocation immediately
// preceding the one that just started at bank k, so it points at k
// instead of whatever came after k before this allocation existed.
func (h *heap) fixPredecessor(k int, newNext uint8) {
	for i := k - 1; i >= 0; {
		if h.banks[i].firstBank == bankFree {
			i--
			continue
		}
		predStart := int(h.banks[i].firstBank)
		if h.banks[predStart].next == newNext {
			h.setNext(predStart, uint8(k))
		}
		return
	}
}

// setNext stamps next onto every bank of the allocation starting at start.
func (h *heap) setNext(start int, next uint8) {
	n := int(h.banks[start].banksUsed)
	for i := start; i < start+n; i++ {
		h.banks[i].next = next
	}
}

// Allocate reserves the smallest run of free banks that can hold size
// bytes (first-fit) and returns its base address, or 0 if no run is long
// enough or size is zero/oversized.
func (h *heap) Allocate(size uint32) uint32 {
	n := bankCountFor(size)
	if n == 0 {
		return 0
	}
	run := 0
	start := 0
	for i := 0; i < HeapBankCount; i++ {
		if h.banks[i].firstBank != bankFree {
			run = 0
			continue
		}
		if run == 0 {
			start = i
		}
		run++
		if run != int(n) {
			continue
		}
		next := h.firstLiveFrom(start + int(n))
		for b := start; b < start+int(n); b++ {
			h.banks[b] = bankMeta{firstBank: uint8(start), banksUsed: n, next: next}
		}
		h.fixPredecessor(start, next)
		return HeapBase + uint32(start)*HeapBankSize
	}
	return 0
}

// Free releases the allocation owning addr. Any bank-aligned address
// within a live allocation resolves to that allocation, not just its
// first bank.
func (h *heap) Free(addr uint32) error {
	idx, err := heapBankIndex(addr)
	if err != nil {
		return err
	}
	if h.banks[idx].firstBank == bankFree {
		return errIllegalOperation
	}
	start := int(h.banks[idx].firstBank)
	n := int(h.banks[start].banksUsed)
	next := h.banks[start].next

	for i := start - 1; i >= 0; i-- {
		if h.banks[i].firstBank == bankFree {
			continue
		}
		predStart := int(h.banks[i].firstBank)
		h.setNext(predStart, next)
		break
	}

	for b := start; b < start+n; b++ {
		h.banks[b] = bankMeta{firstBank: bankFree, next: bankFree}
	}
	return nil
}

// Get returns the bank value at addr, masked to the given access width
// (1, 2, or 4 bytes). It is an illegal operation to read a free bank or
// an address outside the heap region.
func (h *heap) Get(addr uint32, width int) (uint32, error) {
	idx, err := heapBankIndex(addr)
	if err != nil {
		return 0, err
	}
	if h.banks[idx].firstBank == bankFree {
		return 0, errIllegalOperation
	}
	return maskToWidth(h.banks[idx].value, width), nil
}

// Set stores val, masked to the given access width, as the bank's entire
// value. It is an illegal operation to write a free bank or an address
// outside the heap region.
func (h *heap) Set(addr uint32, val uint32, width int) error {
	idx, err := heapBankIndex(addr)
	if err != nil {
		return err
	}
	if h.banks[idx].firstBank == bankFree {
		return errIllegalOperation
	}
	h.banks[idx].value = maskToWidth(val, width)
	return nil
}

// heapBankIndex validates addr as a bank-aligned address within the heap
// region and returns its bank index.
func heapBankIndex(addr uint32) (int, error) {
	if addr < HeapBase || addr > HeapEnd {
		return 0, errIllegalOperation
	}
	off := addr - HeapBase
	if off%HeapBankSize != 0 {
		return 0, errIllegalOperation
	}
	return int(off / HeapBankSize), nil
}
