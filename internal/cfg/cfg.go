package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Режимы хранения корзины
const (
	CartStorageRedis  = "redis"
	CartStorageMemory = "memory"
)

// Режимы построения ссылок на изображения
const (
	ImagesModeBaseURL = "base_url"
	ImagesModeMinio   = "minio"
)

type Config struct {
	Http    *HTTPConfig
	Grpc    *GRPCConfig
	Redis   *RedisCfg
	Images  *ImagesCfg
	Kafka   *KafkaCfg
	ShopAPI *ShopAPICfg
	Cart    *CartCfg
	Catalog *CatalogCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	SwaggerURL   string
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

type ImagesCfg struct {
	Mode              string        // base_url | minio
	PublicBaseURL     string        // База для относительных путей изображений
	MinioEndpoint     string        // Адрес конечной точки Minio
	BucketName        string        // Бакет с изображениями товаров
	MinioRootUser     string        // Имя пользователя для доступа к Minio
	MinioRootPassword string        // Пароль для доступа к Minio
	MinioUseSSL       bool          // Использовать ли TLS при обращении к Minio
	MinioRegion       string        // Регион бакета, чтобы presign не ходил в сеть
	PresignExpiry     time.Duration // Время жизни presigned-ссылки
}

// KafkaCfg — публикация событий корзины. Пустой Brokers отключает публикацию.
type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
	BatchTimeout      time.Duration
	WriteTimeout      time.Duration
}

func (k *KafkaCfg) Enabled() bool {
	return len(k.Brokers) > 0
}

type ShopAPICfg struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	MaxBackoff   time.Duration
}

type CartCfg struct {
	Storage       string        // redis | memory
	StorageKey    string        // Фиксированный ключ корзины, к нему добавляется id сессии
	TTL           time.Duration // Время жизни сохранённой корзины
	MaxSessions   int           // Размер LRU активных корзин в памяти
	CookieName    string
	SessionHeader string
	CookieMaxAge  time.Duration
	CookieSecure  bool
}

type CatalogCfg struct {
	CacheTTL time.Duration
	Locale   string // BCP 47 тег для сортировки по имени
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	images, err := loadImagesCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	shopAPI, err := loadShopAPICfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cart, err := loadCartCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if images.Mode == ImagesModeBaseURL && images.PublicBaseURL == "" {
		images.PublicBaseURL = shopAPI.BaseURL
	}

	return &Config{
		Http:    http,
		Grpc:    loadGRPCConfig(),
		Redis:   redis,
		Images:  images,
		Kafka:   kafka,
		ShopAPI: shopAPI,
		Cart:    cart,
		Catalog: catalog,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "storefront.cart-events"
		defaultNetworkMode       = "tcp"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultBatchTimeout      = 200 * time.Millisecond
		defaultWriteTimeout      = 10 * time.Second
	)

	var brokers []string
	if brokerStr := os.Getenv("KAFKA_BROKERS"); brokerStr != "" {
		for _, b := range strings.Split(brokerStr, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	batchTimeout, err := parseDurationEnv("KAFKA_BATCH_TIMEOUT", defaultBatchTimeout)
	if err != nil {
		return nil, e.Wrap("KAFKA_BATCH_TIMEOUT", err)
	}

	writeTimeout, err := parseDurationEnv("KAFKA_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		return nil, e.Wrap("KAFKA_WRITE_TIMEOUT", err)
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("KAFKA_REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("KAFKA_REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		BatchTimeout:      batchTimeout,
		WriteTimeout:      writeTimeout,
	}, nil
}

func loadImagesCfg(log logger.Logger) (*ImagesCfg, error) {
	const (
		defaultMode          = ImagesModeBaseURL
		defaultUseSSL        = false
		defaultEndpoint      = "minio:9000"
		defaultRegion        = "us-east-1"
		defaultPresignExpiry = time.Hour
	)

	mode := getEnvOrDefault("IMAGES_MODE", defaultMode)
	if mode != ImagesModeBaseURL && mode != ImagesModeMinio {
		err := fmt.Errorf("IMAGES_MODE must be %q or %q, got %q", ImagesModeBaseURL, ImagesModeMinio, mode)
		log.Errorf(err, "invalid IMAGES_MODE")
		return nil, err
	}

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	expiry, err := parseDurationEnv("IMAGES_PRESIGN_EXPIRY", defaultPresignExpiry)
	if err != nil {
		log.Errorf(err, "invalid IMAGES_PRESIGN_EXPIRY")
		return nil, err
	}

	bucket := getEnv("BUCKET_NAME")
	if mode == ImagesModeMinio && bucket == "" {
		err := fmt.Errorf("BUCKET_NAME is required when IMAGES_MODE=%s", ImagesModeMinio)
		log.Errorf(err, "missing BUCKET_NAME")
		return nil, err
	}

	return &ImagesCfg{
		Mode:              mode,
		PublicBaseURL:     strings.TrimRight(getEnv("IMAGES_PUBLIC_BASE_URL"), "/"),
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        bucket,
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		MinioRegion:       getEnvOrDefault("MINIO_REGION", defaultRegion),
		PresignExpiry:     expiry,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		SwaggerURL:   getEnvOrDefault("SWAGGER_URL", "http://localhost:"+port+"/swagger/doc.json"),
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadShopAPICfg(log logger.Logger) (*ShopAPICfg, error) {
	const (
		defaultTimeout      = 10 * time.Second
		defaultMaxRetries   = 3
		defaultRetryBackoff = 200 * time.Millisecond
		defaultMaxBackoff   = 2 * time.Second
	)

	baseURL := strings.TrimRight(getEnv("SHOP_API_URL"), "/")
	if baseURL == "" {
		err := fmt.Errorf("SHOP_API_URL is required")
		log.Errorf(err, "missing SHOP_API_URL")
		return nil, err
	}

	timeout, err := parseDurationEnv("SHOP_API_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid SHOP_API_TIMEOUT")
		return nil, err
	}

	maxRetries, err := parseIntEnv("SHOP_API_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid SHOP_API_MAX_RETRIES")
		return nil, err
	}

	retryBackoff, err := parseDurationEnv("SHOP_API_RETRY_BACKOFF", defaultRetryBackoff)
	if err != nil {
		log.Errorf(err, "invalid SHOP_API_RETRY_BACKOFF")
		return nil, err
	}

	maxBackoff, err := parseDurationEnv("SHOP_API_MAX_BACKOFF", defaultMaxBackoff)
	if err != nil {
		log.Errorf(err, "invalid SHOP_API_MAX_BACKOFF")
		return nil, err
	}

	return &ShopAPICfg{
		BaseURL:      baseURL,
		Timeout:      timeout,
		MaxRetries:   maxRetries,
		RetryBackoff: retryBackoff,
		MaxBackoff:   maxBackoff,
	}, nil
}

func loadCartCfg(log logger.Logger) (*CartCfg, error) {
	const (
		defaultStorage      = CartStorageRedis
		defaultStorageKey   = "cart_v1"
		defaultTTL          = 30 * 24 * time.Hour
		defaultMaxSessions  = 10000
		defaultCookieName   = "cart_session"
		defaultHeader       = "X-Cart-Session"
		defaultCookieMaxAge = 30 * 24 * time.Hour
	)

	storage := getEnvOrDefault("CART_STORAGE", defaultStorage)
	if storage != CartStorageRedis && storage != CartStorageMemory {
		err := fmt.Errorf("CART_STORAGE must be %q or %q, got %q", CartStorageRedis, CartStorageMemory, storage)
		log.Errorf(err, "invalid CART_STORAGE")
		return nil, err
	}

	ttl, err := parseDurationEnv("CART_TTL", defaultTTL)
	if err != nil {
		log.Errorf(err, "invalid CART_TTL")
		return nil, err
	}

	maxSessions, err := parseIntEnv("CART_MAX_SESSIONS", defaultMaxSessions)
	if err != nil || maxSessions <= 0 {
		err = fmt.Errorf("CART_MAX_SESSIONS must be a positive integer: %w", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid CART_MAX_SESSIONS")
		return nil, err
	}

	cookieMaxAge, err := parseDurationEnv("CART_COOKIE_MAX_AGE", defaultCookieMaxAge)
	if err != nil {
		log.Errorf(err, "invalid CART_COOKIE_MAX_AGE")
		return nil, err
	}

	cookieSecure, err := strconv.ParseBool(getEnvOrDefault("CART_COOKIE_SECURE", "false"))
	if err != nil {
		log.Errorf(err, "invalid CART_COOKIE_SECURE")
		return nil, err
	}

	return &CartCfg{
		Storage:       storage,
		StorageKey:    getEnvOrDefault("CART_STORAGE_KEY", defaultStorageKey),
		TTL:           ttl,
		MaxSessions:   maxSessions,
		CookieName:    getEnvOrDefault("CART_COOKIE_NAME", defaultCookieName),
		SessionHeader: getEnvOrDefault("CART_SESSION_HEADER", defaultHeader),
		CookieMaxAge:  cookieMaxAge,
		CookieSecure:  cookieSecure,
	}, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultCacheTTL = time.Minute
		defaultLocale   = "en"
	)

	cacheTTL, err := parseDurationEnv("CATALOG_CACHE_TTL", defaultCacheTTL)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_CACHE_TTL")
		return nil, err
	}

	return &CatalogCfg{
		CacheTTL: cacheTTL,
		Locale:   getEnvOrDefault("CATALOG_LOCALE", defaultLocale),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
