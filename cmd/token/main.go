package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hugohenrick/erp-cooperativas/internal/config"
	"github.com/hugohenrick/erp-cooperativas/pkg/auth"
)

func main() {
	login := flag.String("login", "", "login gravado no subject do token")
	authorities := flag.String("authorities", "", "permissões separadas por vírgula (ex.: ROLE_ADMIN,ROLE_USER)")
	ttl := flag.Duration("ttl", 24*time.Hour, "validade do token")
	flag.Parse()

	// Carregar configuração (.env opcional + variáveis de ambiente)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	token, err := issueToken(cfg, *login, splitAuthorities(*authorities), *ttl)
	if err != nil {
		log.Fatalf("Erro ao gerar token: %v", err)
	}

	fmt.Println(token)
}

// issueToken assina um token com a mesma chave usada pela API
func issueToken(cfg *config.Config, login string, authorities []string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(login) == "" {
		return "", errors.New("login é obrigatório")
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.SecretKey, ttl)
	if err != nil {
		return "", err
	}

	return jwtService.GenerateToken(login, authorities...)
}

func splitAuthorities(s string) []string {
	var authorities []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			authorities = append(authorities, a)
		}
	}
	return authorities
}
