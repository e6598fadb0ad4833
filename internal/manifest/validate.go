package manifest

import "fmt"

func (m *Manifest) Validate() error {
	if len(m.Includes) == 0 {
		return fmt.Errorf("manifest %s must declare at least one include directory", m.Name)
	}
	if len(m.Files) == 0 {
		return fmt.Errorf("manifest %s must declare at least one thrift file", m.Name)
	}
	if m.Output == "" {
		return fmt.Errorf("manifest %s is missing an output directory", m.Name)
	}
	return nil
}
