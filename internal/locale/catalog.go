package locale

// Catalog holds the user-facing messages of one language. Entries containing
// fmt verbs are format strings; their argument order is documented per field.
type Catalog struct {
	Lang Lang

	// Options is the option summary printed by --help.
	Options string
	// Usage is the synopsis printed after the program name.
	Usage string
	// UsageLabel prefixes the synopsis line.
	UsageLabel string

	NoHome         string
	OneOrTheOther  string
	FindNeedsValue string
	ScanNeedsValue string
	// UnknownArg: argument.
	UnknownArg string
	BothGiven  string
	// ConfigInvalid: config path, error.
	ConfigInvalid string

	// SearchFailed: exit code, directory, error.
	SearchFailed string
	// InvalidDir: directory.
	InvalidDir string
	// ScanInvalidDir: directory.
	ScanInvalidDir string
	// CreateDirFailed: directory, error.
	CreateDirFailed string
	// ScanFailed: exit code, directory, error.
	ScanFailed string

	// FindHeader: pattern, directory.
	FindHeader string
	// NoTxtFiles: directory.
	NoTxtFiles string
	// NotFound: pattern.
	NotFound string

	// ChdirFailed: directory, error.
	ChdirFailed string
	// ScanHeader: directory.
	ScanHeader string
	// ScanDone: output file.
	ScanDone string
}

// For returns a copy of the catalog for lang. Unknown values get English.
func For(lang Lang) *Catalog {
	var c Catalog
	switch lang {
	case Fr:
		c = catalogFr
	case Es:
		c = catalogEs
	default:
		c = catalogEn
	}
	return &c
}

var catalogEn = Catalog{
	Lang: En,
	Options: `    -f,   --find  <pattern>       : Pattern to search: put it in single quotes '...'.
    -s,   --scan  <folder>        : Path to volume/folder to scan.
    -ver, --version               : Program info version.
    -h,   --help                  : Help message then exit.`,
	Usage:          "-f <pattern> | -s <folder>",
	UsageLabel:     "Usage:",
	NoHome:         "Error: Unable to fetch HOME environment variable.",
	OneOrTheOther:  "You must specify either -f/--find or -s/--scan.",
	FindNeedsValue: "Error: Argument -f/--find requires a value.",
	ScanNeedsValue: "Error: Argument -s/--scan requires a value.",
	UnknownArg:     "Error: Unknown argument '%s'.",
	BothGiven:      "Error: You must specify either -f/--find or -s/--scan, not both.",
	ConfigInvalid:  "Error: Invalid configuration file '%s': %v",

	SearchFailed:    "Error %d: Problem with search in '%s'. %v",
	InvalidDir:      "The folder '%s' does not exist or is not valid.",
	ScanInvalidDir:  "The scan folder '%s' does not exist or is not valid.",
	CreateDirFailed: "Error: Unable to create directory '%s': %v.",
	ScanFailed:      "Error %d: Unable to scan directory '%s': %v.",

	FindHeader: "Searching pattern: '%s', in directory: '%s'",
	NoTxtFiles: "The folder '%s'\ndoes not contain any .txt files to perform the search.",
	NotFound:   "No file with the pattern '%s' was found.",

	ChdirFailed: "Error: Unable to change directory to '%s': %v",
	ScanHeader:  "Scanning files in directory: %s",
	ScanDone:    "Scan completed ! Results saved in '%s'",
}

var catalogFr = Catalog{
	Lang: Fr,
	Options: `    -f,   --find  <motif>         : Motif à chercher: mettre entre '...'.
    -s,   --scan  <dossier>       : Analyse un dossier.
    -ver, --version               : Affiche la version du programme.
    -h,   --help                  : Affiche ce message d'aide.`,
	Usage:          "-f <motif> | -s <dossier>",
	UsageLabel:     "Usage :",
	NoHome:         "Erreur: Impossible de récupérer la variable d'environnement HOME.",
	OneOrTheOther:  "Vous devez spécifier soit -f/--find, soit -s/--scan.",
	FindNeedsValue: "Erreur: L'argument -f/--find nécessite une valeur.",
	ScanNeedsValue: "Erreur: L'argument -s/--scan nécessite une valeur.",
	UnknownArg:     "Erreur: Argument inconnu '%s'.",
	BothGiven:      "Erreur: Vous devez spécifier soit -f/--find, soit -s/--scan, pas les deux.",
	ConfigInvalid:  "Erreur: Fichier de configuration invalide '%s': %v",

	SearchFailed:    "Erreur %d: Problème lors de la recherche dans '%s'. %v",
	InvalidDir:      "Le dossier '%s' n'existe pas ou n'est pas valide.",
	ScanInvalidDir:  "Le dossier d'analyse '%s' n'existe pas ou n'est pas valide.",
	CreateDirFailed: "Erreur: Impossible de créer le dossier '%s': %v",
	ScanFailed:      "Erreur %d: Impossible de scanner le dossier '%s': %v.",

	FindHeader: "Recherche du motif: '%s', Dans le dossier: '%s'",
	NoTxtFiles: "Le dossier '%s'\nne contient aucun fichier .txt pour effectuer la recherche.",
	NotFound:   "Aucun fichier contenant le motif '%s' n'a été trouvé.",

	ChdirFailed: "Erreur: Impossible de changer de répertoire vers '%s': %v",
	ScanHeader:  "Scan des fichiers du répertoire: %s",
	ScanDone:    "Scan terminé ! Résultats enregistrés dans '%s'",
}

var catalogEs = Catalog{
	Lang: Es,
	Options: `    -f,   --find     <patrón>             : Patrón a buscar: poner entre '...'.
    -s,   --scan     <volumen a escanear> : Ruta del directorio a escanear.
    -ver, --version                       : Proporciona información de la versión del programa.
    -h,   --help                          : Muestra este mensaje de ayuda y finaliza.`,
	Usage:          "-f <patrón> | -s <directorio>",
	UsageLabel:     "Uso:",
	NoHome:         "Error: No se puede recuperar la variable de entorno HOME.",
	OneOrTheOther:  "Debe especificar -f/--find o -s/--scan.",
	FindNeedsValue: "Error: El argumento -f/--find requiere un valor.",
	ScanNeedsValue: "Error: El argumento -s/--scan requiere un valor.",
	UnknownArg:     "Error: Argumento desconocido '%s'.",
	BothGiven:      "Error: Debe especificar -f/--find o -s/--scan, no ambos.",
	ConfigInvalid:  "Error: Archivo de configuración no válido '%s': %v",

	SearchFailed:    "Error %d: Problema al buscar en '%s'. %v",
	InvalidDir:      "La carpeta '%s' no existe o no es válida.",
	ScanInvalidDir:  "El directorio de escaneo '%s' no existe o no es válido.",
	CreateDirFailed: "Error: No se puede crear el directorio '%s': %v.",
	ScanFailed:      "Error %d: No se puede escanear el directorio '%s': %v.",

	FindHeader: "Búsqueda del motivo: '%s', En la carpeta: '%s'",
	NoTxtFiles: "La carpeta '%s'\nno contiene archivos .txt para realizar la búsqueda.",
	NotFound:   "No se encontró ningún archivo con el patrón '%s'.",

	ChdirFailed: "Error: No se puede cambiar al directorio '%s': %v",
	ScanHeader:  "Escaneando archivos en el directorio: %s",
	ScanDone:    "¡Escaneo completado! Resultados guardados en '%s'",
}
