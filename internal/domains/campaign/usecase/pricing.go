package usecase

import (
	"math/big"

	"tradehub/go-backend/internal/platform/fixedpoint"
)

// ProductCost is quantity x pricePerUnit in minor units, exact.
func ProductCost(pricePerUnit *big.Int, quantity uint64) *big.Int {
	return fixedpoint.Mul(pricePerUnit, quantity)
}

// ContainerPayment derives the charge for joining a container campaign:
// price-per-kg = targetAmount / maxWeightKg, payment = weightKg x
// price-per-kg rounded half-up to two decimal places before conversion to
// minor units.
func ContainerPayment(targetAmount *big.Int, maxWeightKg, weightKg uint64) (*big.Int, error) {
	perKg, err := PricePerKg(targetAmount, maxWeightKg)
	if err != nil {
		return nil, err
	}
	payment := new(big.Rat).Mul(perKg, new(big.Rat).SetUint64(weightKg))
	return fixedpoint.QuotientUnits(payment, 2)
}

// PricePerKg is the decimal price of one kilogram of container capacity.
// targetAmount is in minor units; the result is a decimal rational.
func PricePerKg(targetAmount *big.Int, maxWeightKg uint64) (*big.Rat, error) {
	if maxWeightKg == 0 {
		return nil, fixedpoint.ErrZeroDivision
	}
	decimal := new(big.Rat).SetFrac(new(big.Int).Set(targetAmount), fixedpoint.Scale())
	return decimal.Quo(decimal, new(big.Rat).SetUint64(maxWeightKg)), nil
}
