package ports

type PackStorePort interface {
	ListPacks(dir string) ([]string, error)
	ReadPack(path string) ([]byte, error)
	WritePack(path string, data []byte) error
}
