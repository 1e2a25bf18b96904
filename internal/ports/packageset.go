package ports

import "dkp-bootstrap/internal/types"

type PackageSetPort interface {
	Load(path string) (types.PackageSet, error)
}
