// Package dmtxgo provides Data Matrix (ECC-200) high-level encoding.
//
// The encoder subpackage transforms a byte message into the data codeword
// stream defined by ISO/IEC 16022, driving a single target encodation scheme
// (ASCII, C40, Text, X12, EDIFACT or Base 256) including latch/unlatch
// transitions, end-of-symbol handling, padding and the position-dependent
// randomization of pad and Base 256 codewords. The decoder subpackage
// performs the reverse transformation from data codewords back to bytes.
//
// Error correction, module placement and rendering are downstream stages and
// are not part of this module.
package dmtxgo
