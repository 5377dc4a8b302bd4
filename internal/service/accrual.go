package service

import (
	"math/big"

	"github.com/maikelordaz/ccip-token/internal/core/domain"
	"github.com/maikelordaz/ccip-token/pkg/apperror"
)

var ratePrecision = big.NewInt(domain.RatePrecision)

// liveBalance computes floor(principal * (PRECISION + rate*elapsed) / PRECISION):
// simple linear growth, exactly principal at zero elapsed. Intermediate math
// uses big.Int because principal*(PRECISION + rate*elapsed) exceeds int64 for
// any realistic principal; a result that does not fit int64 fails with
// ArithmeticOverflow rather than wrapping.
func liveBalance(principal, rate, elapsedSeconds int64) (int64, error) {
	if principal == 0 || rate == 0 || elapsedSeconds <= 0 {
		// Nothing accrued; elapsed < 0 can only come from clock skew and is
		// treated as zero elapsed.
		return principal, nil
	}

	growth := new(big.Int).Mul(big.NewInt(rate), big.NewInt(elapsedSeconds))
	growth.Add(growth, ratePrecision)
	live := new(big.Int).Mul(big.NewInt(principal), growth)
	live.Quo(live, ratePrecision)

	if !live.IsInt64() {
		return 0, apperror.ErrArithmeticOverflow()
	}
	return live.Int64(), nil
}
