package cache

import "time"

const (
	CacheVersion = "v1"

	// RenditionExistsKeyPattern memoizes a positive existence probe for a
	// derived key. Derived objects are immutable, so a positive entry can
	// never go stale; misses always fall through to the store.
	RenditionExistsKeyPattern = CacheVersion + ":rendition:exists:%s"

	// RenditionExistsTTL bounds memo lifetime purely to cap cache growth.
	RenditionExistsTTL = 24 * time.Hour
)
