package reframe

// numBuckets is the number of horizontal zones a frame is divided into.
// Buckets stand in for face identity across frames: fewer buckets give more
// stable identities at the cost of spatial resolution. 12 is the tuned value.
const numBuckets = 12

// bucketFor quantizes a horizontal position into a bucket index.
func bucketFor(centerX, frameWidth float64) int {
	b := int(centerX / frameWidth * numBuckets)
	if b < 0 {
		return 0
	}
	if b >= numBuckets {
		return numBuckets - 1
	}
	return b
}

// bucketState is the per-bucket memory carried across frames. It persists
// while the bucket is absent (sustained activity decays instead of being
// deleted) so the engine can tell "momentarily unseen" from "never seen".
type bucketState struct {
	sustained     float64
	lastX         float64
	hasLastX      bool
	lastSeenFrame int
}
