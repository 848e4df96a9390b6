// Package analysis measures how much an encoded image differs from its cover.
//
// LSB embedding changes each touched channel by at most one, so the numbers
// here are mostly a sanity check: a stego image should report a
// MaxChannelDelta of 1, a PSNR well above 50 dB and a CIEDE2000 color
// difference far below the roughly 1.0 threshold of human perception.
//
// # Reports
//
// Compare walks both images pixel by pixel after normalizing them to 8-bit
// NRGBA and returns a Report with:
//   - ChangedPixels / ChangedChannels: how many pixels and channel values differ
//   - MaxChannelDelta: the largest absolute difference of a single channel
//   - PSNR: peak signal-to-noise ratio over all four channels, nil when identical
//   - MeanDeltaE / MaxDeltaE: CIEDE2000 color difference of the RGB part
//
// # Difference Maps
//
// DiffMap renders the least significant bit plane of both images and the
// per-channel difference between them, so every flipped bit shows up as a
// saturated channel. The result is a PNG suitable for returning to a client.
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use.
package analysis
