// SPDX-License-Identifier: MIT

// Package nested implements a three-tier, event-driven controller.
//
// Tiers, innermost first:
//
//	Reactive       sensor → actuator; proportional step with a dead zone
//	    ↕
//	Adaptive       time-weighted averages of movement and error; proposes
//	               gain adjustments once enough energy has accumulated
//	    ↕
//	Environmental  counts sign flips of those proposals and asks for wider
//	               or narrower limits
//
// A System owns one of each tier plus a bounded events.Queue. Every sensor
// reading is pushed through the queue; each dequeued event is offered to the
// tiers in the fixed order above and whatever they emit is queued again,
// until the queue drains or the iteration cap is hit. Memory in the adaptive
// and environmental tiers then decays exponentially with the elapsed time.
//
// Time comes from an injectable Clock so the whole controller can be driven
// deterministically in tests.
//
// A System is not safe for concurrent use.
package nested
