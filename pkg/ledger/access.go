package ledger

import (
	"bytes"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// AccessControl holds the administrator identity and the relayer set.
// Every mutation requires the caller to be the administrator.
type AccessControl struct {
	admin    common.Address
	relayers map[common.Address]struct{}
}

// NewAccessControl builds an access control with the given administrator
// and relayer set.
func NewAccessControl(admin common.Address, relayers ...common.Address) *AccessControl {
	a := &AccessControl{
		admin:    admin,
		relayers: make(map[common.Address]struct{}, len(relayers)),
	}
	for _, r := range relayers {
		a.relayers[r] = struct{}{}
	}
	return a
}

// Administrator returns the current administrator.
func (a *AccessControl) Administrator() common.Address {
	return a.admin
}

// IsAdministrator reports whether id is the administrator.
func (a *AccessControl) IsAdministrator(id common.Address) bool {
	return id == a.admin
}

// IsRelayer reports whether id is in the relayer set.
func (a *AccessControl) IsRelayer(id common.Address) bool {
	_, ok := a.relayers[id]
	return ok
}

// Relayers returns the relayer set ordered by address.
func (a *AccessControl) Relayers() []common.Address {
	out := make([]common.Address, 0, len(a.relayers))
	for r := range a.relayers {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].Bytes(), out[j].Bytes()) < 0
	})
	return out
}

// RequireAdministrator fails with ErrUnauthorized unless caller is the administrator.
func (a *AccessControl) RequireAdministrator(caller common.Address) error {
	if !a.IsAdministrator(caller) {
		return ErrUnauthorized
	}
	return nil
}

// AddRelayer adds id to the relayer set.
func (a *AccessControl) AddRelayer(caller, id common.Address) error {
	if err := a.RequireAdministrator(caller); err != nil {
		return err
	}
	if a.IsRelayer(id) {
		return ErrAlreadyRelayer
	}
	a.relayers[id] = struct{}{}
	return nil
}

// RemoveRelayer removes id from the relayer set.
func (a *AccessControl) RemoveRelayer(caller, id common.Address) error {
	if err := a.RequireAdministrator(caller); err != nil {
		return err
	}
	if !a.IsRelayer(id) {
		return ErrNotRelayer
	}
	delete(a.relayers, id)
	return nil
}

// TransferAdministration hands the administrator role to newAdmin.
// The previous administrator keeps any relayer membership it had.
func (a *AccessControl) TransferAdministration(caller, newAdmin common.Address) error {
	if err := a.RequireAdministrator(caller); err != nil {
		return err
	}
	if newAdmin == (common.Address{}) {
		return ErrInvalidRecipient
	}
	a.admin = newAdmin
	return nil
}

func (a *AccessControl) clone() *AccessControl {
	return NewAccessControl(a.admin, a.Relayers()...)
}
