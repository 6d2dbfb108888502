package ledger

import "sort"

// ChainRegistry is the set of destination chains transfers may target.
type ChainRegistry struct {
	chains map[uint64]struct{}
}

// NewChainRegistry returns a registry holding the given chain ids.
func NewChainRegistry(chains ...uint64) *ChainRegistry {
	r := &ChainRegistry{chains: make(map[uint64]struct{}, len(chains))}
	for _, c := range chains {
		r.chains[c] = struct{}{}
	}
	return r
}

// Add whitelists chainID.
func (r *ChainRegistry) Add(chainID uint64) error {
	if r.IsSupported(chainID) {
		return ErrChainAlreadySupported
	}
	r.chains[chainID] = struct{}{}
	return nil
}

// Remove drops chainID from the whitelist. Pending transfers to it are unaffected.
func (r *ChainRegistry) Remove(chainID uint64) error {
	if !r.IsSupported(chainID) {
		return ErrChainNotSupported
	}
	delete(r.chains, chainID)
	return nil
}

// IsSupported reports whether chainID is a registered destination.
func (r *ChainRegistry) IsSupported(chainID uint64) bool {
	_, ok := r.chains[chainID]
	return ok
}

// Chains returns the supported chain ids in ascending order.
func (r *ChainRegistry) Chains() []uint64 {
	out := make([]uint64, 0, len(r.chains))
	for c := range r.chains {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
