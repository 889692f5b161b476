package uielements

// ImpactGenerator produces the short tactile pulse that accompanies a toggle.
//
// The generator follows an arm/fire/re-arm cycle: Prepare arms the generator
// so the next Trigger fires with low latency, and a Checkbox calls Prepare
// again immediately after each Trigger. Hosts with a platform haptics API
// supply an implementation via WithImpactGenerator; everywhere else the
// default NopImpactGenerator keeps the cycle a no-op.
type ImpactGenerator interface {
	// Prepare arms the generator for a low-latency Trigger.
	Prepare()

	// Trigger fires one light-impact pulse.
	Trigger()
}

// NopImpactGenerator is an ImpactGenerator that does nothing.
// It is the default on hosts without tactile hardware.
type NopImpactGenerator struct{}

// Prepare implements ImpactGenerator.
func (NopImpactGenerator) Prepare() {}

// Trigger implements ImpactGenerator.
func (NopImpactGenerator) Trigger() {}
