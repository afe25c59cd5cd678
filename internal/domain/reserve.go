package domain

// Declared record sizes in bytes, including the 8-byte type tag.
const (
	FeesCollectorSize     = 18
	MintFeesCollectorSize = 9
	UserVaultSize         = 41
	ListingSize           = 81
	PendingMintSize       = 49
)

// PendingFractionalizeSize returns the size of a pending fractionalize record.
func PendingFractionalizeSize(p PendingFractionalize) int {
	// tag + asset + weight + three string prefixes + bump
	return 8 + 32 + 8 + 4*3 + len(p.Name) + len(p.Symbol) + len(p.URI) + 1
}

// ReserveSchedule prices storage: every record keeps a reserve floor of
// (OverheadBytes + size) × PerByte that can only be recovered by closing it.
type ReserveSchedule struct {
	OverheadBytes uint64
	PerByte       uint64
}

// DefaultReserveSchedule returns the stock schedule.
func DefaultReserveSchedule() ReserveSchedule {
	return ReserveSchedule{OverheadBytes: 128, PerByte: 6960}
}

// MinimumBalance is the reserve floor of a record of size bytes.
func (s ReserveSchedule) MinimumBalance(size int) uint64 {
	return (s.OverheadBytes + uint64(size)) * s.PerByte
}

// Withdrawable returns balance minus the floor, or zero if below it.
func (s ReserveSchedule) Withdrawable(balance uint64, size int) uint64 {
	floor := s.MinimumBalance(size)
	if balance <= floor {
		return 0
	}
	return balance - floor
}
