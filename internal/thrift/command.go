package thrift

// buildCommand creates the argument vector for compiling one source
// file. The executable itself is not included; it is passed to the
// runner separately. Order: one -I pair per path element, then -o, then
// --gen, then the source file.
func (t *Thrift) buildCommand(file string) []string {
	command := make([]string, 0, 2*len(t.pathElements)+5)
	for _, pathElement := range t.pathElements {
		command = append(command, "-I", pathElement)
	}
	command = append(command, "-o", t.outputDir)
	command = append(command, "--gen", t.generator)
	command = append(command, file)
	return command
}
