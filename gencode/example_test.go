package gencode_test

import (
	"fmt"

	"github.com/IkramInf/BioHub/gencode"
	"github.com/IkramInf/BioHub/seq"
)

// ExampleTable_Translate translates an open reading frame under the
// standard genetic code; the TGA stop codon ends the protein.
func ExampleTable_Translate() {
	tbl, _ := gencode.ByID(gencode.Standard)
	orf := seq.MustNew(seq.DNA, "ATGGCCATTGTAATGGGCCGCTGA")

	protein, err := tbl.Translate(orf)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(protein)
	// Output:
	// MAIVMGR
}

// ExampleTable_IsStart shows how start codons differ between genetic codes.
func ExampleTable_IsStart() {
	std, _ := gencode.ByID(gencode.Standard)
	bact, _ := gencode.ByID(gencode.Bacterial)

	fmt.Println(std.IsStart("GTG"), bact.IsStart("GTG"))
	// Output:
	// false true
}
