package setup

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// FirstRunNeeded reports whether provisioning should run. The credential
// file is the only idempotency marker; store contents are never inspected.
func FirstRunNeeded(markerPath string) bool {
	_, err := os.Stat(markerPath)
	return os.IsNotExist(err)
}

// AutoSetup runs provisioning when the marker file is absent. On a fatal
// failure it prints a banner, waits for a keypress and returns the error so
// the caller can terminate the process.
func (o *Orchestrator) AutoSetup() error {
	if !FirstRunNeeded(o.Cfg.CredentialFile()) {
		return nil
	}

	bar := strings.Repeat("█", 60)
	fmt.Println("\n" + bar)
	fmt.Println("█  DETECTANDO ENTORNO NUEVO - INICIANDO INSTALACIÓN...     █")
	fmt.Println(bar + "\n")
	fmt.Println(">> Configurando Bases de Datos y cargando semillas...")

	res, err := o.Run()
	if err != nil {
		fmt.Printf("\nERROR CRÍTICO DURANTE LA INSTALACIÓN AUTOMÁTICA: %v\n", err)
		fmt.Println("Por favor, revise la conexión a los servidores de base de datos.")
		fmt.Print("Presione Enter para salir...")
		bufio.NewReader(os.Stdin).ReadString('\n')
		return err
	}

	line := strings.Repeat("=", 60)
	fmt.Println("\n" + line)
	fmt.Println("INSTALACIÓN COMPLETADA EXITOSAMENTE.")
	fmt.Println("   - SQL: Tablas creadas y datos cargados.")
	if res.MongoOK {
		fmt.Printf("   - Mongo: %d de %d notas cargadas.\n", res.NotesInserted, res.NotesTotal)
	} else {
		fmt.Printf("   - Mongo: carga parcial (%d de %d notas), revise el log.\n",
			res.NotesInserted, res.NotesTotal)
	}
	fmt.Println("   - Sistema: CSV de seguridad generado.")
	fmt.Println(line)
	fmt.Println("\nIniciando aplicación en 3 segundos...")
	time.Sleep(3 * time.Second)
	return nil
}
