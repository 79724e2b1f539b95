package suite

import (
	"math"

	"github.com/ProtonOS/ProtonOS-sub011/pkg/assert"
	"github.com/ProtonOS/ProtonOS-sub011/pkg/track"
)

// runArith probes two's-complement integer arithmetic and basic
// floating-point arithmetic.
func runArith(tr *track.Tracker) {
	var maxI4, one int32 = math.MaxInt32, 1
	var minI4 int32 = math.MinInt32
	var maxI8 int64 = math.MaxInt64

	tr.Record("arith.add.i4.Simple", int32(2)+int32(3) == 5)
	tr.Record("arith.add.i4.Wrap", maxI4+one == minI4)
	tr.Record("arith.sub.i4.Wrap", minI4-one == maxI4)
	tr.Record("arith.mul.i4.Simple", int32(-6)*int32(7) == -42)
	tr.Record("arith.mul.i8.Wrap", maxI8*2 == -2)
	tr.Record("arith.div.i4.TruncTowardZero", int32(-7)/int32(2) == -3)
	tr.Record("arith.rem.i4.SignFollowsDividend", int32(-7)%int32(2) == -1)
	tr.Record("arith.shl.i4.Simple", one<<4 == 16)
	tr.Record("arith.shr.i4.Arithmetic", int32(-8)>>1 == -4)
	tr.Record("arith.shr.u4.Logical", uint32(0x80000000)>>1 == 0x40000000)
	tr.Record("arith.and.i4.Simple", int32(0b1100)&int32(0b1010) == 0b1000)
	tr.Record("arith.or.i4.Simple", int32(0b1100)|int32(0b1010) == 0b1110)
	tr.Record("arith.xor.i4.Simple", int32(0b1100)^int32(0b1010) == 0b0110)

	twoPow53 := float64(int64(1) << 53)
	tr.Record("arith.add.r8.Simple", assert.AreApproxEqual(0.3, 0.1+0.2))
	tr.Record("arith.add.r8.Absorption", twoPow53+1 == twoPow53)
	tr.Record("arith.mul.r8.Simple", assert.AreApproxEqual(0.02, 0.1*0.2))
	tr.Record("arith.div.r8.Simple", assert.AreApproxEqual(1.0/3.0, 0.1/0.3))
	tr.Record("arith.add.r4.Simple", assert.AreApproxEqual32(0.3, 0.1+0.2))
	tr.Record("arith.mul.r4.Simple", assert.AreApproxEqual32(0.02, float32(0.1)*float32(0.2)))
}

// runConvert probes numeric conversions between integer widths and float
// precisions. Sources are runtime variables so the conversions exercise the
// machine behavior rather than compile-time constant folding.
func runConvert(tr *track.Tracker) {
	var negOne int32 = -1
	var wide int64 = 0x1_0000_0001
	var byteMax uint8 = 0xFF
	var maxI8 int64 = math.MaxInt64

	tr.Record("conv.i4.i8.Widen", int64(negOne) == -1)
	tr.Record("conv.i8.i4.Narrow", int32(wide) == 1)
	tr.Record("conv.i4.u8.SignExtendThenReinterpret", uint64(int64(negOne)) == math.MaxUint64)
	tr.Record("conv.u1.i4.ZeroExtend", int32(byteMax) == 255)

	nearlyThree := 2.9
	tr.Record("conv.r8.i4.Trunc", int32(nearlyThree) == 2)
	tr.Record("conv.r8.i4.TruncNegative", int32(-nearlyThree) == -2)
	tr.Record("conv.i4.r8.Exact", float64(int32(1<<24)) == 16777216.0)
	tr.Record("conv.i8.r8.Rounded", assert.AreUlpEqual(float64(maxI8), 9.223372036854776e18, 1))

	tenth := 0.1
	huge := 1e300
	tiny := 1e-300
	tr.Record("conv.r4.r8.WidenExact", float64(float32(1.5)) == 1.5)
	tr.Record("conv.r8.r4.Round", assert.AreApproxEqual32(0.1, float32(tenth)))
	tr.Record("conv.r8.r4.Overflow", assert.IsPositiveInfinity32(float32(huge)))
	tr.Record("conv.r8.r4.Underflow", float32(tiny) == 0)
}

// runFloat probes IEEE-754 special-value behavior through the oracle.
func runFloat(tr *track.Tracker) {
	nan := math.NaN()
	posInf := math.Inf(1)
	negInf := math.Inf(-1)
	negZero := math.Copysign(0, -1)

	tr.Record("fp.nan.NotEqualToSelf", nan != nan)
	tr.Record("fp.nan.Classified", assert.IsNaN(nan))
	tr.Record("fp.nan.NeverApproxEqual", !assert.AreApproxEqual(nan, nan))
	tr.Record("fp.nan.FromInfMinusInf", assert.IsNaN(posInf+negInf))
	tr.Record("fp.nan.FromZeroTimesInf", assert.IsNaN(0*posInf))
	tr.Record("fp.nan.Propagates", assert.IsNaN(nan+1))

	tr.Record("fp.inf.Classified", assert.IsPositiveInfinity(posInf) && assert.IsNegativeInfinity(negInf))
	tr.Record("fp.inf.SameSignApproxEqual", assert.AreApproxEqual(posInf, posInf))
	tr.Record("fp.inf.OppositeSignNotEqual", !assert.AreApproxEqual(posInf, negInf))
	tr.Record("fp.inf.Absorbs", posInf+1e308 == posInf)
	tr.Record("fp.inf.ReciprocalIsZero", 1/posInf == 0)

	tr.Record("fp.zero.SignedEqual", negZero == 0)
	tr.Record("fp.zero.ReciprocalSign", assert.IsNegativeInfinity(1/negZero))
	tr.Record("fp.zero.ApproxEqualAcrossSign", assert.AreApproxEqualWithin(negZero, 0, 0))

	smallest := math.SmallestNonzeroFloat64
	tr.Record("fp.subnormal.Nonzero", smallest > 0)
	tr.Record("fp.subnormal.HalvesToZero", smallest/2 == 0)
	tr.Record("fp.ulp.Adjacent", assert.UlpDistance(1.0, math.Nextafter(1.0, 2.0)) == 1)
	tr.Record("fp.ulp.AcrossZero", assert.AreUlpEqual(0, negZero, 0))
}
