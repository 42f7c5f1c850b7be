package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrImportInProgress = errors.New("ya hay una importación en curso")
	ErrUnreadableFile   = errors.New("no se pudo leer el archivo")
	ErrFileTooLarge     = errors.New("el archivo excede el tamaño permitido")
	ErrQueueHasErrors   = errors.New("la bandeja tiene movimientos con error")
	ErrEmptyQueue       = errors.New("la bandeja está vacía")
	ErrPreviewExpired   = errors.New("la vista previa expiró o no existe")
	ErrContextNotReady  = errors.New("selecciona centro, almacén y material")
	ErrNotEditing       = errors.New("no hay un movimiento en edición")
	ErrEditInProgress   = errors.New("hay un movimiento en edición")
)
