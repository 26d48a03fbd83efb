package analytics

import "time"

// SetNow fija el reloj en tests.
func (uc *DashboardUseCase) SetNow(f func() time.Time) { uc.now = f }
