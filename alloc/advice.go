package alloc

import "github.com/hupe1980/c2d/internal/mmap"

// Advice is an access hint for mapped blocks.
type Advice int

const (
	AdviceNormal Advice = iota
	AdviceSequential
	AdviceRandom
	AdviceWillNeed
	AdviceDontNeed
)

// Advise passes an access hint to the kernel. It is a no-op for heap blocks
// and on platforms without madvise.
func (b *Block) Advise(a Advice) error {
	if b == nil || b.mapping == nil {
		return nil
	}
	var p mmap.AccessPattern
	switch a {
	case AdviceSequential:
		p = mmap.AccessSequential
	case AdviceRandom:
		p = mmap.AccessRandom
	case AdviceWillNeed:
		p = mmap.AccessWillNeed
	case AdviceDontNeed:
		p = mmap.AccessDontNeed
	default:
		p = mmap.AccessDefault
	}
	return b.mapping.Advise(p)
}
