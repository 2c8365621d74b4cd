package cache

import "image"
import "sync"

// Keys identify a cached mask: glyph index and subpixel offset on the
// first position, and the bit representations of the horizontal and
// vertical scales on the other two.
type MaskKey [3]uint64

const maxMakeRoomAttempts = 2
const evictionSampleSize = 10

// approximate fixed memory footprint of a cache entry, on top
// of the mask pixels themselves
const constEntryByteSize = 56 + 24

// A concurrent-safe glyph mask cache with a maximum memory bound.
// Eviction uses random sampling: a handful of entries are examined
// and the least accessed one is dropped. Not the smartest policy in
// town, but it has no pathological cases and needs no bookkeeping
// on the read path beyond an access count.
type Cache struct {
	cachedMasks map[MaskKey]*cacheEntry
	bytesUsed   int
	peakBytes   int
	byteLimit   int
	mutex       sync.RWMutex
}

type cacheEntry struct {
	mask        *image.Alpha
	byteSize    int
	accessCount uint32
}

// Creates a new [Cache] bounded by the given size, in bytes.
// Panics if maxByteSize is negative.
func New(maxByteSize int) *Cache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &Cache{
		cachedMasks: make(map[MaskKey]*cacheEntry, 128),
		byteLimit: maxByteSize,
	}
}

// Returns the mask associated to the given key, if any.
func (self *Cache) GetMask(key MaskKey) (*image.Alpha, bool) {
	self.mutex.RLock()
	entry, found := self.cachedMasks[key]
	self.mutex.RUnlock()
	if !found { return nil, false }

	self.mutex.Lock()
	entry.accessCount += 1
	self.mutex.Unlock()
	return entry.mask, true
}

// Stores the given mask under the given key. Masks that are too big
// for the cache's memory bound, or that can't be made room for, are
// silently discarded; the caller keeps working with its own copy
// either way. Nil masks (empty glyphs) can be stored too.
func (self *Cache) PassMask(key MaskKey, mask *image.Alpha) {
	byteSize := constEntryByteSize
	if mask != nil { byteSize += len(mask.Pix) }
	if byteSize > self.byteLimit { return }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, alreadyExists := self.cachedMasks[key]
	if alreadyExists { return }

	// make room for the new entry if necessary
	attempts := maxMakeRoomAttempts
	for self.bytesUsed + byteSize > self.byteLimit {
		if attempts <= 0 { return } // desist
		attempts -= 1
		self.evictColdEntry()
	}

	self.cachedMasks[key] = &cacheEntry{mask: mask, byteSize: byteSize}
	self.bytesUsed += byteSize
	if self.bytesUsed > self.peakBytes {
		self.peakBytes = self.bytesUsed
	}
}

// Removes the entry with the lowest access count among a small
// random sample. Map iteration order provides the randomness.
// Must be called with the write lock held.
func (self *Cache) evictColdEntry() {
	var coldestKey MaskKey
	var coldestEntry *cacheEntry
	samplesTaken := 0
	for key, entry := range self.cachedMasks {
		if coldestEntry == nil || entry.accessCount < coldestEntry.accessCount {
			coldestKey, coldestEntry = key, entry
		}
		samplesTaken += 1
		if samplesTaken >= evictionSampleSize { break }
	}
	if coldestEntry == nil { return } // cache already empty

	delete(self.cachedMasks, coldestKey)
	self.bytesUsed -= coldestEntry.byteSize
}

// Returns the current number of cached masks.
func (self *Cache) NumEntries() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.cachedMasks)
}

// Returns an approximation of the number of bytes taken by the
// masks currently stored in the cache.
func (self *Cache) ApproxByteSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.bytesUsed
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life. Useful to
// adjust the cache capacity to the actual usage of your program.
func (self *Cache) PeakSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.peakBytes
}
