package ledger

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
)

// AddRelayer whitelists id as a relayer.
func (l *Ledger) AddRelayer(ctx context.Context, caller, id common.Address) error {
	return l.execute(ctx, "add_relayer", func(_ context.Context, c *call) error {
		if err := c.state.Access.AddRelayer(caller, id); err != nil {
			return err
		}
		c.dirty = true
		e := bridge.NewEvent(bridge.EventRelayerAdded, caller)
		e.Subject = id
		c.emit(e)
		return nil
	})
}

// RemoveRelayer drops id from the relayer set.
func (l *Ledger) RemoveRelayer(ctx context.Context, caller, id common.Address) error {
	return l.execute(ctx, "remove_relayer", func(_ context.Context, c *call) error {
		if err := c.state.Access.RemoveRelayer(caller, id); err != nil {
			return err
		}
		c.dirty = true
		e := bridge.NewEvent(bridge.EventRelayerRemoved, caller)
		e.Subject = id
		c.emit(e)
		return nil
	})
}

// TransferAdministration hands the administrator role to newAdmin.
func (l *Ledger) TransferAdministration(ctx context.Context, caller, newAdmin common.Address) error {
	return l.execute(ctx, "transfer_administration", func(_ context.Context, c *call) error {
		if err := c.state.Access.TransferAdministration(caller, newAdmin); err != nil {
			return err
		}
		c.dirty = true
		e := bridge.NewEvent(bridge.EventAdministrationTransferred, caller)
		e.Subject = newAdmin
		c.emit(e)
		return nil
	})
}

// Pause stops new initiations.
func (l *Ledger) Pause(ctx context.Context, caller common.Address) error {
	return l.execute(ctx, "pause", func(_ context.Context, c *call) error {
		if err := c.state.Access.RequireAdministrator(caller); err != nil {
			return err
		}
		c.state.Gate.Pause()
		c.dirty = true
		c.emit(bridge.NewEvent(bridge.EventPaused, caller))
		return nil
	})
}

// Unpause resumes initiations.
func (l *Ledger) Unpause(ctx context.Context, caller common.Address) error {
	return l.execute(ctx, "unpause", func(_ context.Context, c *call) error {
		if err := c.state.Access.RequireAdministrator(caller); err != nil {
			return err
		}
		c.state.Gate.Unpause()
		c.dirty = true
		c.emit(bridge.NewEvent(bridge.EventUnpaused, caller))
		return nil
	})
}

// AddSupportedChain whitelists a destination chain.
func (l *Ledger) AddSupportedChain(ctx context.Context, caller common.Address, chainID uint64) error {
	return l.execute(ctx, "add_chain", func(_ context.Context, c *call) error {
		if err := c.state.Access.RequireAdministrator(caller); err != nil {
			return err
		}
		if err := c.state.Chains.Add(chainID); err != nil {
			return err
		}
		c.dirty = true
		e := bridge.NewEvent(bridge.EventChainAdded, caller)
		e.ChainID = chainID
		c.emit(e)
		return nil
	})
}

// RemoveSupportedChain removes a destination chain. Pending transfers to it
// can still be completed or cancelled.
func (l *Ledger) RemoveSupportedChain(ctx context.Context, caller common.Address, chainID uint64) error {
	return l.execute(ctx, "remove_chain", func(_ context.Context, c *call) error {
		if err := c.state.Access.RequireAdministrator(caller); err != nil {
			return err
		}
		if err := c.state.Chains.Remove(chainID); err != nil {
			return err
		}
		c.dirty = true
		e := bridge.NewEvent(bridge.EventChainRemoved, caller)
		e.ChainID = chainID
		c.emit(e)
		return nil
	})
}

// UpdateBridgeFee sets the fee rate in basis points, at most MaxFeeRate.
// Pending transfers keep the rate they were initiated with.
func (l *Ledger) UpdateBridgeFee(ctx context.Context, caller common.Address, rate uint64) error {
	return l.execute(ctx, "update_fee", func(_ context.Context, c *call) error {
		if err := c.state.Access.RequireAdministrator(caller); err != nil {
			return err
		}
		if err := c.state.Fees.SetRate(rate); err != nil {
			return err
		}
		c.dirty = true
		e := bridge.NewEvent(bridge.EventFeeUpdated, caller)
		e.FeeRate = rate
		c.emit(e)
		return nil
	})
}
