// Package engine evaluates raw gesture notifications against configured
// gestures and reports trigger decisions to the surrounding rule engine.
//
// The Evaluator is stateless apart from the accumulator store it owns (or
// shares). Each call decodes the payload, classifies it, projects the
// motion onto the gesture's bound direction, and consults the accumulator.
// No call blocks, performs I/O, or returns an error: every failure mode
// degrades to "no trigger".
//
// A Session groups the gestures of one device channel and owns that
// device's identity. Release detection belongs to the host; when it
// observes one it calls Session.Release (or Evaluator.Release) to drop the
// device's accumulator state. Absent that call, entries persist for the
// process lifetime.
package engine
