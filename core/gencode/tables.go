// core/gencode/tables.go
package gencode

// Static table data transcribed from the NCBI genetic code reference
// (gc.prt). Codon order: TTT, TTC, TTA, TTG, TCT, ... GGG, first base
// varying slowest over TCAG.
var tables = []Table{
	{
		ID:          1,
		Name:        "Standard",
		AbbrName:    "SGC0",
		AminoAcids:  "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "---M------**--*----M---------------M----------------------------",
	},
	{
		ID:          2,
		Name:        "Vertebrate Mitochondrial",
		AbbrName:    "SGC1",
		AminoAcids:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
		StartCodons: "----------**--------------------MMMM----------**----------------",
	},
	{
		ID:          3,
		Name:        "Yeast Mitochondrial",
		AbbrName:    "SGC2",
		AminoAcids:  "FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "----------**----------------------MM----------------------------",
	},
	{
		ID:          4,
		Name:        "Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma",
		AbbrName:    "SGC3",
		AminoAcids:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "--MM------**-------M------------MMMM---------------M------------",
	},
	{
		ID:          5,
		Name:        "Invertebrate Mitochondrial",
		AbbrName:    "SGC4",
		AminoAcids:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG",
		StartCodons: "---M------**--------------------MMMM---------------M------------",
	},
	{
		ID:          6,
		Name:        "Ciliate Nuclear; Dasycladacean Nuclear; Hexamita Nuclear",
		AbbrName:    "SGC5",
		AminoAcids:  "FFLLSSSSYYQQCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "--------------*--------------------M----------------------------",
	},
	{
		ID:          9,
		Name:        "Echinoderm Mitochondrial; Flatworm Mitochondrial",
		AbbrName:    "SGC8",
		AminoAcids:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		StartCodons: "----------**-----------------------M---------------M------------",
	},
	{
		ID:          10,
		Name:        "Euplotid Nuclear",
		AbbrName:    "SGC9",
		AminoAcids:  "FFLLSSSSYY**CCCWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "----------**-----------------------M----------------------------",
	},
	{
		ID:          11,
		Name:        "Bacterial, Archaeal and Plant Plastid",
		AminoAcids:  "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "---M------**--*----M------------MMMM---------------M------------",
	},
	{
		ID:          12,
		Name:        "Alternative Yeast Nuclear",
		AminoAcids:  "FFLLSSSSYY**CC*WLLLSPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "----------**--*----M---------------M----------------------------",
	},
	{
		ID:          13,
		Name:        "Ascidian Mitochondrial",
		AminoAcids:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSGGVVVVAAAADDEEGGGG",
		StartCodons: "---M------**----------------------MM---------------M------------",
	},
	{
		ID:          14,
		Name:        "Alternative Flatworm Mitochondrial",
		AminoAcids:  "FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		StartCodons: "-----------*-----------------------M----------------------------",
	},
	{
		ID:          15,
		Name:        "Blepharisma Macronuclear",
		AminoAcids:  "FFLLSSSSYY*QCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "----------*---*--------------------M----------------------------",
	},
	{
		ID:          16,
		Name:        "Chlorophycean Mitochondrial",
		AminoAcids:  "FFLLSSSSYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "----------*---*--------------------M----------------------------",
	},
	{
		ID:          21,
		Name:        "Trematode Mitochondrial",
		AminoAcids:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		StartCodons: "----------**----------------------MM---------------M------------",
	},
	{
		ID:          22,
		Name:        "Scenedesmus obliquus Mitochondrial",
		AminoAcids:  "FFLLSS*SYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "------*---*---*--------------------M----------------------------",
	},
	{
		ID:          23,
		Name:        "Thraustochytrium Mitochondrial",
		AminoAcids:  "FF*LSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "--*-------**--*-----------------M--M---------------M------------",
	},
	{
		ID:          24,
		Name:        "Rhabdopleuridae Mitochondrial",
		AminoAcids:  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
		StartCodons: "---M------**-------M---------------M---------------M------------",
	},
	{
		ID:          25,
		Name:        "Candidate Division SR1 and Gracilibacteria",
		AminoAcids:  "FFLLSSSSYY**CCGWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "---M------**-----------------------M---------------M------------",
	},
	{
		ID:          26,
		Name:        "Pachysolen tannophilus Nuclear",
		AminoAcids:  "FFLLSSSSYY**CC*WLLLAPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "----------**--*----M---------------M----------------------------",
	},
	{
		ID:          27,
		Name:        "Karyorelict Nuclear",
		AminoAcids:  "FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "--------------*--------------------M----------------------------",
	},
	{
		ID:          28,
		Name:        "Condylostoma Nuclear",
		AminoAcids:  "FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "----------**--*--------------------M----------------------------",
	},
	{
		ID:          29,
		Name:        "Mesodinium Nuclear",
		AminoAcids:  "FFLLSSSSYYYYCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "--------------*--------------------M----------------------------",
	},
	{
		ID:          30,
		Name:        "Peritrich Nuclear",
		AminoAcids:  "FFLLSSSSYYEECC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "--------------*--------------------M----------------------------",
	},
	{
		ID:          31,
		Name:        "Blastocrithidia Nuclear",
		AminoAcids:  "FFLLSSSSYYEECCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		StartCodons: "----------**-----------------------M----------------------------",
	},
	{
		ID:          33,
		Name:        "Cephalodiscidae Mitochondrial",
		AminoAcids:  "FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
		StartCodons: "---M-------*-------M---------------M---------------M------------",
	},
}
