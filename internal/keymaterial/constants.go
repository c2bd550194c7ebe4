package keymaterial

// HKDFContext is the default info string used in HKDF key derivation for
// domain separation.
const HKDFContext = "aes256:key:v1"
