package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Общие настройки хранилища
	MongoURI   string `env:"MONGO_URI"`
	DBName     string `env:"DB_NAME"`
	AuthSecret string `env:"SECRET_KEY"`

	// Catalog service
	CatalogAddr     string        `env:"CATALOG_ADDR"`
	ImageDelAddr    string        `env:"IMAGE_DEL_ADDR"` // адрес gRPC координатора
	ImageDelTimeout time.Duration `env:"IMAGE_DEL_TIMEOUT"`
	JournalPath     string        `env:"JOURNAL_PATH"` // локальный SQLite-журнал намерений удаления

	// Image service
	ImageAddr      string `env:"IMAGE_ADDR"`
	GRPCAddr       string `env:"GRPC_ADDR"`       // слушающий адрес координатора
	StorageBackend string `env:"STORAGE_BACKEND"` // "gridfs" | "s3"
	MaxUploadMB    int    `env:"MAX_UPLOAD_MB"`

	// S3/R2 (используется только при STORAGE_BACKEND=s3)
	S3Bucket          string `env:"S3_BUCKET"`
	S3AccountID       string `env:"S3_ACCOUNT_ID"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "строка подключения к MongoDB")
	flag.StringVar(&cfg.DBName, "db-name", cfg.DBName, "имя базы данных")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для проверки подписи JWT")
	flag.StringVar(&cfg.CatalogAddr, "catalog-addr", cfg.CatalogAddr, "адрес HTTP каталога (host:port)")
	flag.StringVar(&cfg.ImageAddr, "image-addr", cfg.ImageAddr, "адрес HTTP сервиса изображений (host:port)")
	flag.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "слушающий адрес gRPC координатора")
	flag.StringVar(&cfg.ImageDelAddr, "image-del-addr", cfg.ImageDelAddr, "адрес gRPC координатора удаления")
	flag.DurationVar(&cfg.ImageDelTimeout, "image-del-timeout", cfg.ImageDelTimeout, "дедлайн вызова координатора")
	flag.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "путь к SQLite-журналу намерений удаления")
	flag.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "бэкенд блобов: gridfs или s3")
	flag.IntVar(&cfg.MaxUploadMB, "max-upload-mb", cfg.MaxUploadMB, "лимит загрузки изображения, МБ")
	flag.Parse()

	// Defaults
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.DBName == "" {
		cfg.DBName = "CatalogServiceDB"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.ImageDelTimeout <= 0 {
		cfg.ImageDelTimeout = 3 * time.Second
	}
	if cfg.JournalPath == "" {
		cfg.JournalPath = "catalog-journal.db"
	}
	if cfg.StorageBackend != "s3" {
		cfg.StorageBackend = "gridfs"
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 20
	}

	// адреса: только "host:port" (без схемы и пути), иначе откат на дефолт
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.CatalogAddr) {
		cfg.CatalogAddr = "localhost:5003"
	}
	if !hostPortRe.MatchString(cfg.ImageAddr) {
		cfg.ImageAddr = "localhost:5009"
	}
	if !hostPortRe.MatchString(cfg.GRPCAddr) {
		cfg.GRPCAddr = ":5014"
	}
	if !hostPortRe.MatchString(cfg.ImageDelAddr) {
		cfg.ImageDelAddr = "localhost:5014"
	}

	return cfg
}
