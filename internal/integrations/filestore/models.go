package filestore

// StoredFile результат загрузки артефакта во внешнее хранилище
// Сервис хранит только этот указатель; содержимое файла не инспектируется
type StoredFile struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
