package constants

// ItemStatus is the canonical per-message status in the pipeline state machine.
type ItemStatus string

// Stable values (these exact strings appear in logs and failure reports).
const (
	ItemFetched    ItemStatus = "FETCHED"    // body retrieved from the provider
	ItemSkipped    ItemStatus = "SKIPPED"    // failed the content-marker validity check
	ItemNormalized ItemStatus = "NORMALIZED" // body reduced to text lines
	ItemExtracted  ItemStatus = "EXTRACTED"  // field extractors ran
	ItemValid      ItemStatus = "VALID"      // record passed validation
	ItemRejected   ItemStatus = "REJECTED"   // terminal per-item failure
)
