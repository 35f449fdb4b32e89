package app

import (
	"fmt"

	"github.com/allisson/toyrsa/internal/database"
	rsaRepository "github.com/allisson/toyrsa/internal/rsa/repository"
	rsaService "github.com/allisson/toyrsa/internal/rsa/service"
	rsaUseCase "github.com/allisson/toyrsa/internal/rsa/usecase"
)

// RandomSource returns the source public exponents are drawn from. A non-zero
// KeygenSeed selects a reproducible source.
func (c *Container) RandomSource() rsaService.RandomSource {
	c.randomSourceInit.Do(func() {
		if c.config.KeygenSeed != 0 {
			c.randomSource = rsaService.NewSeededRandomSource(uint64(c.config.KeygenSeed))
			return
		}
		c.randomSource = rsaService.NewCryptoRandomSource()
	})
	return c.randomSource
}

// KeyGenerator returns the key pair generator.
func (c *Container) KeyGenerator() *rsaService.KeyGenerator {
	c.keyGeneratorInit.Do(func() {
		c.keyGenerator = rsaService.NewKeyGenerator(c.RandomSource(), c.config.KeygenMaxAttempts)
	})
	return c.keyGenerator
}

// Cipher returns the symbol cipher.
func (c *Container) Cipher() *rsaService.Cipher {
	c.cipherInit.Do(func() {
		c.cipher = rsaService.NewCipher(c.config.CipherWorkers)
	})
	return c.cipher
}

// KeyPairRepository returns the key pair repository for the configured driver.
func (c *Container) KeyPairRepository() (rsaUseCase.KeyPairRepository, error) {
	var err error
	c.keyPairRepoInit.Do(func() {
		c.keyPairRepo, err = c.initKeyPairRepository()
		if err != nil {
			c.initErrors["keyPairRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyPairRepo"]; exists {
		return nil, storedErr
	}
	return c.keyPairRepo, nil
}

// KeyPairUseCase returns the key pair use case.
func (c *Container) KeyPairUseCase() (rsaUseCase.KeyPairUseCase, error) {
	var err error
	c.keyPairUseCaseInit.Do(func() {
		c.keyPairUseCase, err = c.initKeyPairUseCase()
		if err != nil {
			c.initErrors["keyPairUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyPairUseCase"]; exists {
		return nil, storedErr
	}
	return c.keyPairUseCase, nil
}

// CipherUseCase returns the cipher use case.
func (c *Container) CipherUseCase() (rsaUseCase.CipherUseCase, error) {
	var err error
	c.cipherUseCaseInit.Do(func() {
		c.cipherUseCase, err = c.initCipherUseCase()
		if err != nil {
			c.initErrors["cipherUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cipherUseCase"]; exists {
		return nil, storedErr
	}
	return c.cipherUseCase, nil
}

func (c *Container) initKeyPairRepository() (rsaUseCase.KeyPairRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key pair repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return rsaRepository.NewMySQLKeyPairRepository(db), nil
	case database.DriverPostgres:
		return rsaRepository.NewPostgreSQLKeyPairRepository(db), nil
	case database.DriverSQLite:
		return rsaRepository.NewSQLiteKeyPairRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initKeyPairUseCase() (rsaUseCase.KeyPairUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for key pair use case: %w", err)
	}

	keyPairRepo, err := c.KeyPairRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key pair repository for key pair use case: %w", err)
	}

	baseUseCase := rsaUseCase.NewKeyPairUseCase(txManager, keyPairRepo, c.KeyGenerator(), c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for key pair use case: %w", err)
		}
		return rsaUseCase.NewKeyPairUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initCipherUseCase() (rsaUseCase.CipherUseCase, error) {
	keyPairRepo, err := c.KeyPairRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key pair repository for cipher use case: %w", err)
	}

	baseUseCase := rsaUseCase.NewCipherUseCase(keyPairRepo, c.Cipher())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for cipher use case: %w", err)
		}
		return rsaUseCase.NewCipherUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
