/*
Package hclmap loads map definitions written in HCL.

A map is a sequence of `route` blocks. The two labels name the endpoint
cities; the body carries the route attributes:

	route "London" "Amsterdam" {
	  color   = color.unspecified
	  length  = 2
	  ferries = 2
	}

	route "Paris" "Zurich" {
	  color  = "unspecified"
	  length = 3
	  tunnel = true
	}

All attributes are optional. Colors may be given as strings or through the
`color` object exposed to every expression (color.red, color.blue, …).

The loader accepts a single file or a directory; directories are searched
recursively for .hcl files, which are read in lexical path order. Records
keep the order of their blocks.
*/
package hclmap
