// Package sincfb implements a parameterized band-pass filterbank built from
// windowed sinc kernels. Each filter is described by two trainable values,
// a low edge and a bandwidth, so an 80-filter bank carries 160 parameters
// instead of the 80*251 free weights of a dense convolution layer.
//
// Stored parameters are unconstrained; materialization maps them to usable
// band edges:
//
//	low  = minLowHz + |lowHz|
//	high = clamp(low + minBandHz + |bandHz|, minLowHz, sampleRate/2)
//
// so every filter keeps a positive bandwidth away from DC regardless of
// what training did to the raw values. The kernel of a filter with
// normalized edges fl and fh is the difference of two low-pass sincs,
//
//	h[t] = 2*fh*sinc(2*fh*t) - 2*fl*sinc(2*fl*t)
//
// Hamming-windowed and scaled so the center tap is 1.
//
// Without explicit parameters the bank initializes its edges on a mel-
// spaced grid between 30 Hz and sampleRate/2 - (minLowHz + minBandHz),
// which concentrates filters where speech carries most of its energy.
//
// Kernels are materialized once at construction; a FilterBank is immutable
// and safe for concurrent use.
package sincfb
