package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFolder             = "folder"
	KeySelectFolder       = "select_folder"
	KeyBrowse             = "browse"
	KeyResolution         = "resolution"
	KeyFormat             = "format"
	KeyRequiredMaps       = "required_maps"
	KeyAddMap             = "add_map"
	KeyNewMapName         = "new_map_name"
	KeyCheckTextures      = "check_textures"
	KeyChecking           = "checking"
	KeyExport             = "export"
	KeyRevealFolder       = "reveal_folder"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyAdd                = "add"
	KeyRemove             = "remove"
	KeyCustomMaps         = "custom_maps"
	KeySettingsSaved      = "settings_saved"
	KeyWarning            = "warning"
	KeyMapExists          = "map_exists"
	KeyInvalidFolder      = "invalid_folder"
	KeyInvalidResolution  = "invalid_resolution"
	KeyNoResults          = "no_results"
	KeyNoTextureSets      = "no_texture_sets"
	KeySummary            = "summary"
	KeyReportExported     = "report_exported"
	KeyErrorExporting     = "error_exporting"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyResultsPlaceholder = "results_placeholder"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage returns the two letter language code of the OS locale
func systemLanguage() string {
	code := lang.SystemLocale().LanguageString()
	if len(code) < 2 {
		return "en"
	}
	return strings.ToLower(code[:2])
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with args substituted
func (l *Localization) Format(key string, args ...interface{}) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"vi": "Tiếng Việt",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Texture Checker",
		KeyFolder:             "Texture folder",
		KeySelectFolder:       "Select a folder with textures",
		KeyBrowse:             "Browse",
		KeyResolution:         "Resolution",
		KeyFormat:             "Format",
		KeyRequiredMaps:       "Required maps",
		KeyAddMap:             "Add map type",
		KeyNewMapName:         "Map type name",
		KeyCheckTextures:      "Check Textures",
		KeyChecking:           "Checking %d/%d...",
		KeyExport:             "Export report",
		KeyRevealFolder:       "Reveal folder",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyAdd:                "Add",
		KeyRemove:             "Remove",
		KeyCustomMaps:         "Custom map types",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyWarning:            "Warning",
		KeyMapExists:          "Map type %q already exists",
		KeyInvalidFolder:      "Please select a valid folder",
		KeyInvalidResolution:  "Resolution must be a number between %d and %d",
		KeyNoResults:          "Run a check first",
		KeyNoTextureSets:      "No texture sets found",
		KeySummary:            "%d set(s): %d valid, %d invalid",
		KeyReportExported:     "Report saved to %s. Open it now?",
		KeyErrorExporting:     "Error exporting report",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyErrorOpeningFile:   "Error opening file",
		KeyResultsPlaceholder: "Results will appear here",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Проверка текстур",
		KeyFolder:             "Папка с текстурами",
		KeySelectFolder:       "Выберите папку с текстурами",
		KeyBrowse:             "Обзор",
		KeyResolution:         "Разрешение",
		KeyFormat:             "Формат",
		KeyRequiredMaps:       "Обязательные карты",
		KeyAddMap:             "Добавить тип карты",
		KeyNewMapName:         "Название типа карты",
		KeyCheckTextures:      "Проверить текстуры",
		KeyChecking:           "Проверка %d/%d...",
		KeyExport:             "Экспорт отчёта",
		KeyRevealFolder:       "Показать папку",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyAdd:                "Добавить",
		KeyRemove:             "Удалить",
		KeyCustomMaps:         "Пользовательские типы карт",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyWarning:            "Предупреждение",
		KeyMapExists:          "Тип карты %q уже существует",
		KeyInvalidFolder:      "Выберите существующую папку",
		KeyInvalidResolution:  "Разрешение должно быть числом от %d до %d",
		KeyNoResults:          "Сначала выполните проверку",
		KeyNoTextureSets:      "Наборы текстур не найдены",
		KeySummary:            "Наборов: %d, корректных: %d, с ошибками: %d",
		KeyReportExported:     "Отчёт сохранён в %s. Открыть его?",
		KeyErrorExporting:     "Ошибка экспорта отчёта",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyResultsPlaceholder: "Здесь появятся результаты",
	}

	// Vietnamese texts
	l.texts["vi"] = map[string]string{
		KeyAppTitle:           "Kiểm tra Texture",
		KeyFolder:             "Thư mục texture",
		KeySelectFolder:       "Chọn thư mục chứa texture",
		KeyBrowse:             "Duyệt",
		KeyResolution:         "Độ phân giải",
		KeyFormat:             "Định dạng",
		KeyRequiredMaps:       "Map bắt buộc",
		KeyAddMap:             "Thêm loại map",
		KeyNewMapName:         "Tên loại map",
		KeyCheckTextures:      "Kiểm tra Texture",
		KeyChecking:           "Đang kiểm tra %d/%d...",
		KeyExport:             "Xuất báo cáo",
		KeyRevealFolder:       "Mở thư mục",
		KeySettings:           "Cài đặt",
		KeyFile:               "Tệp",
		KeyLanguage:           "Ngôn ngữ",
		KeySave:               "Lưu",
		KeyCancel:             "Hủy",
		KeyAdd:                "Thêm",
		KeyRemove:             "Xóa",
		KeyCustomMaps:         "Loại map tùy chỉnh",
		KeySettingsSaved:      "Đã lưu cài đặt!",
		KeyWarning:            "Cảnh báo",
		KeyMapExists:          "Loại map %q đã tồn tại",
		KeyInvalidFolder:      "Vui lòng chọn một thư mục hợp lệ",
		KeyInvalidResolution:  "Độ phân giải phải là số từ %d đến %d",
		KeyNoResults:          "Hãy chạy kiểm tra trước",
		KeyNoTextureSets:      "Không tìm thấy bộ texture nào",
		KeySummary:            "%d bộ: %d hợp lệ, %d không hợp lệ",
		KeyReportExported:     "Đã lưu báo cáo vào %s. Mở ngay?",
		KeyErrorExporting:     "Lỗi khi xuất báo cáo",
		KeyErrorOpeningFolder: "Lỗi khi mở thư mục",
		KeyErrorOpeningFile:   "Lỗi khi mở tệp",
		KeyResultsPlaceholder: "Kết quả sẽ hiển thị ở đây",
	}
}
