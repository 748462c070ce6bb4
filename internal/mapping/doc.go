// Package mapping provides the YAML descriptor schema, parsing, structural
// validation and JSON schema of enum descriptor files.
//
// A descriptor file is the serializable form of the enum model. It is
// produced by hand or by the Go source front-end and consumed by the
// descriptor collector.
//
// # Schema Overview
//
//	version: "1"
//	package: sample
//	package_path: enumconv/examples/sample
//	enums:
//	  - name: SampleEnum
//	    underlying: int
//	    members:
//	      - name: One_A
//	        value: 100
//	        attrs:
//	          - name: One And A
//	          - to: {type: enumconv/examples/sample.NumberEnumType, value: One}
//	          - from:
//	              - {type: enumconv/examples/sample.NumberEnumType, value: One}
//	              - {type: enumconv/examples/sample.AlphabetEnumType, value: A}
//	      - name: Two_B
//	        attrs:
//	          - alias: ["2", "二"]
//	      - name: Ignore
//	        attrs:
//	          - ignore: true
//
// # Attributes
//
// Each attrs item is a mapping with exactly one key:
//   - name: display name override (last one wins)
//   - alias: string or list of strings accepted when parsing (last one wins)
//   - to: one typed literal the member converts to
//   - from: a tuple of typed literals that identify the member
//   - ignore: exclude the member from every generated function
//
// # Values
//
// A member without a value takes the previous member's value plus one;
// the first member defaults to zero.
package mapping
