package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable/internal/response"
	"timetable/internal/storage"
	"timetable/internal/table"
)

const previewRows = 10

// UploadResponse - результат загрузки таблицы.
type UploadResponse struct {
	ID      string       `json:"id" example:"7b0c2f8e-3c1d-4d7e-9a51-2f9e0c6d1a42"`
	Name    string       `json:"name" example:"timetable.xlsx"`
	Columns []string     `json:"columns"`
	Rows    int          `json:"rows"`
	Preview *table.Table `json:"preview"`
}

// TableResponse - таблица сессии со статистикой по колонкам.
type TableResponse struct {
	ID    string              `json:"id"`
	Table *table.Table        `json:"table"`
	Stats []table.ColumnStats `json:"stats"`
}

// GroupInfo - одна группа разбиения.
type GroupInfo struct {
	Key      string       `json:"key"`
	Rows     int          `json:"rows"`
	FileName string       `json:"file_name"`
	Table    *table.Table `json:"table"`
}

// PartitionsResponse - разбиение таблицы по колонке.
type PartitionsResponse struct {
	ID     string      `json:"id"`
	Column string      `json:"column"`
	Groups []GroupInfo `json:"groups"`
}

// UploadTableHandler принимает таблицу для разбиения
// @Summary		Загрузка таблицы
// @Description	Принимает файл CSV или XLSX (поле file), сохраняет таблицу на время сессии и возвращает её идентификатор
// @Tags			tables
// @Accept			multipart/form-data
// @Produce		json
// @Param			file	formData	file	true	"Файл CSV или XLSX"
// @Success		201		{object}	UploadResponse			"Таблица загружена"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка файла (NO_FILE, UNSUPPORTED_FORMAT, READ_FAILED)"
// @Failure		413		{object}	response.ErrorResponse	"Файл слишком большой (FILE_TOO_LARGE)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка хранилища (STORE_ERROR)"
// @Router			/tables [post]
func (h *Handler) UploadTableHandler(c *gin.Context) {
	if h.MaxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUpload)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeFileTooLarge,
				fmt.Sprintf("Файл больше допустимого размера (%d байт)", tooLarge.Limit), err)
			return
		}
		response.Error(c, http.StatusBadRequest, response.CodeNoFile, "Необходимо передать файл в поле file", err)
		return
	}
	if _, err := table.FormatOf(fh.Filename); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeUnsupportedFormat, "Поддерживаются только файлы .csv и .xlsx", err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeReadFailed, "Ошибка чтения файла", err)
		return
	}
	defer f.Close()

	t, err := table.Read(f, fh.Filename)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeReadFailed, "Ошибка чтения таблицы", err)
		return
	}

	id, err := h.Store.Save(c.Request.Context(), t)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeStoreError, "Ошибка сохранения таблицы", err)
		return
	}
	h.Logger.Info("Таблица загружена",
		zap.String("id", id), zap.String("name", fh.Filename), zap.Int("rows", t.Len()))

	c.JSON(http.StatusCreated, UploadResponse{
		ID:      id,
		Name:    fh.Filename,
		Columns: t.Columns,
		Rows:    t.Len(),
		Preview: t.Preview(previewRows),
	})
}

// GetTableHandler возвращает таблицу сессии
// @Summary		Получение таблицы
// @Description	Возвращает загруженную таблицу и краткую статистику по каждой колонке
// @Tags			tables
// @Produce		json
// @Param			id	path		string	true	"Идентификатор таблицы"
// @Success		200	{object}	TableResponse			"Таблица"
// @Failure		404	{object}	response.ErrorResponse	"Таблица не найдена (TABLE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка хранилища (STORE_ERROR)"
// @Router			/tables/{id} [get]
func (h *Handler) GetTableHandler(c *gin.Context) {
	t, ok := h.loadTable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, TableResponse{ID: c.Param("id"), Table: t, Stats: table.Describe(t)})
}

// DeleteTableHandler удаляет таблицу сессии
// @Summary		Удаление таблицы
// @Tags			tables
// @Produce		json
// @Param			id	path		string	true	"Идентификатор таблицы"
// @Success		200	{object}	response.SuccessResponse	"Таблица удалена"
// @Failure		404	{object}	response.ErrorResponse		"Таблица не найдена (TABLE_NOT_FOUND)"
// @Router			/tables/{id} [delete]
func (h *Handler) DeleteTableHandler(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Таблица удалена"})
}

// GetPartitionsHandler разбивает таблицу по колонке
// @Summary		Разбиение таблицы
// @Description	Группирует строки по значению колонки column; группы идут в порядке первого появления значения
// @Tags			tables
// @Produce		json
// @Param			id		path		string	true	"Идентификатор таблицы"
// @Param			column	query		string	true	"Колонка для группировки"
// @Success		200		{object}	PartitionsResponse		"Группы"
// @Failure		400		{object}	response.ErrorResponse	"Колонка не указана или отсутствует (COLUMN_REQUIRED, COLUMN_NOT_FOUND)"
// @Failure		404		{object}	response.ErrorResponse	"Таблица не найдена (TABLE_NOT_FOUND)"
// @Router			/tables/{id}/partitions [get]
func (h *Handler) GetPartitionsHandler(c *gin.Context) {
	column, parts, ok := h.partition(c)
	if !ok {
		return
	}
	names := table.FileNames(parts, table.FormatXLSX)
	groups := make([]GroupInfo, 0, len(parts))
	for i, g := range parts {
		groups = append(groups, GroupInfo{
			Key:      g.Key,
			Rows:     g.Table.Len(),
			FileName: names[i],
			Table:    g.Table,
		})
	}
	c.JSON(http.StatusOK, PartitionsResponse{ID: c.Param("id"), Column: column, Groups: groups})
}

// DownloadPartitionHandler отдаёт одну группу файлом
// @Summary		Скачивание группы
// @Description	Отдаёт строки одной группы файлом XLSX (по умолчанию) или CSV
// @Tags			tables
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce		text/csv
// @Param			id		path		string	true	"Идентификатор таблицы"
// @Param			column	query		string	true	"Колонка для группировки"
// @Param			key		query		string	true	"Значение колонки (группа)"
// @Param			format	query		string	false	"xlsx или csv"
// @Success		200		{file}		file
// @Failure		400		{object}	response.ErrorResponse	"Ошибка параметров (COLUMN_REQUIRED, KEY_REQUIRED, COLUMN_NOT_FOUND, UNSUPPORTED_FORMAT)"
// @Failure		404		{object}	response.ErrorResponse	"Таблица или группа не найдена (TABLE_NOT_FOUND, GROUP_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка выгрузки (EXPORT_FAILED)"
// @Router			/tables/{id}/partitions/download [get]
func (h *Handler) DownloadPartitionHandler(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	key, present := c.GetQuery("key")
	if !present {
		response.Error(c, http.StatusBadRequest, response.CodeKeyRequired, "Необходимо указать key", nil)
		return
	}
	_, parts, ok := h.partition(c)
	if !ok {
		return
	}
	idx := parts.Index(key)
	if idx < 0 {
		response.Error(c, http.StatusNotFound, response.CodeGroupNotFound, "Группа не найдена", nil)
		return
	}

	data, err := table.Encode(parts[idx].Table, format)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeExportFailed, "Ошибка выгрузки файла", err)
		return
	}
	attachment(c, table.FileNames(parts, format)[idx])
	c.Data(http.StatusOK, table.ContentType(format), data)
}

// DownloadArchiveHandler отдаёт все группы zip-архивом
// @Summary		Скачивание всех групп
// @Description	Отдаёт zip-архив, в котором по одному файлу на каждую группу, файлы названы по значению группы
// @Tags			tables
// @Produce		application/zip
// @Param			id		path		string	true	"Идентификатор таблицы"
// @Param			column	query		string	true	"Колонка для группировки"
// @Param			format	query		string	false	"xlsx или csv"
// @Success		200		{file}		file
// @Failure		400		{object}	response.ErrorResponse	"Ошибка параметров (COLUMN_REQUIRED, COLUMN_NOT_FOUND, UNSUPPORTED_FORMAT)"
// @Failure		404		{object}	response.ErrorResponse	"Таблица не найдена (TABLE_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка выгрузки (EXPORT_FAILED)"
// @Router			/tables/{id}/archive [get]
func (h *Handler) DownloadArchiveHandler(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	column, parts, ok := h.partition(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := table.WriteArchive(&buf, parts, format); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeExportFailed, "Ошибка создания архива", err)
		return
	}
	attachment(c, table.FileName(column, "zip"))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

func (h *Handler) loadTable(c *gin.Context) (*table.Table, bool) {
	t, err := h.Store.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return nil, false
	}
	return t, true
}

func (h *Handler) storeError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		response.Error(c, http.StatusNotFound, response.CodeTableNotFound, "Таблица не найдена или устарела", nil)
		return
	}
	h.Logger.Error("Ошибка хранилища таблиц", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, response.CodeStoreError, "Ошибка хранилища таблиц", err)
}

// partition проверяет колонку до разбиения и разбивает таблицу сессии.
func (h *Handler) partition(c *gin.Context) (string, table.Partitions, bool) {
	column := c.Query("column")
	if column == "" {
		response.Error(c, http.StatusBadRequest, response.CodeColumnRequired, "Необходимо указать column", nil)
		return "", nil, false
	}
	t, ok := h.loadTable(c)
	if !ok {
		return "", nil, false
	}
	parts, err := table.Partition(t, column)
	if err != nil {
		var cnf *table.ColumnNotFoundError
		if errors.As(err, &cnf) {
			response.Error(c, http.StatusBadRequest, response.CodeColumnNotFound, "Колонка не найдена", err)
			return "", nil, false
		}
		response.Error(c, http.StatusInternalServerError, response.CodeExportFailed, "Ошибка разбиения таблицы", err)
		return "", nil, false
	}
	return column, parts, true
}

func exportFormat(c *gin.Context) (string, bool) {
	format := c.DefaultQuery("format", table.FormatXLSX)
	if format != table.FormatXLSX && format != table.FormatCSV {
		response.Error(c, http.StatusBadRequest, response.CodeUnsupportedFormat, "Формат должен быть xlsx или csv", nil)
		return "", false
	}
	return format, true
}

func attachment(c *gin.Context, name string) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
}
