// Package assembler builds the data package manifest of the household
// dataset from the column layout of each resolution's table.
//
// Every non-info column becomes a schema field named <household>_<feed>.
// Its project, region and building type are resolved through the lookup
// tables and must exist there; an unknown feed only falls back to the
// default description.
package assembler
