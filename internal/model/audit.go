package model

// IdentClass labels the kind of identifier a rename touched.
type IdentClass string

const (
	// IdentMethod marks a method rename.
	IdentMethod IdentClass = "method"
	// IdentVariable marks a local variable rename.
	IdentVariable IdentClass = "variable"
	// IdentParameter marks a parameter rename.
	IdentParameter IdentClass = "parameter"
)

// RenameRecord is one textual change applied by the identifier rewriter.
type RenameRecord struct {
	Class   IdentClass `json:"class"`
	OldName string     `json:"old_name"`
	NewName string     `json:"new_name"`
	Line    int        `json:"line"`
	OldText string     `json:"old_text"`
	NewText string     `json:"new_text"`
}

// MutationRecord is one string-literal replacement applied by a mutator
// strategy.
type MutationRecord struct {
	Strategy    string `json:"strategy"`
	Line        int    `json:"line"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

// Audit is the full change record for one rewritten file. The audit exists
// for inspection after the fact; correctness of the rewrite never depends on
// it.
type Audit struct {
	Origin    Path             `json:"origin"`
	Output    Path             `json:"output"`
	Renames   []RenameRecord   `json:"renames"`
	Mutations []MutationRecord `json:"mutations"`
}
