// Package application contém os casos de uso do cadastro: registrar um
// candidato, listar os cadastros, ler estatísticas e reservar vaga de
// concorrência.
//
// Ele depende apenas do pacote domain e não conhece net/http.
// Ex.: RegistrationService.Register(ctx, reg) devolve o Applicant com ID.
package application
