// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -typed -source=./shop.go -destination=../mocks/mock_shop_repository.go -package=mocks ShopRepositoryIface
//go:generate mockgen -typed -source=./job.go -destination=../mocks/mock_job_repository.go -package=mocks JobRepositoryIface
//go:generate mockgen -typed -source=./group.go -destination=../mocks/mock_group_repository.go -package=mocks GroupRepositoryIface
//go:generate mockgen -typed -source=./ledger.go -destination=../mocks/mock_ledger_repository.go -package=mocks LedgerRepositoryIface
//go:generate mockgen -typed -source=./audit_log.go -destination=../mocks/mock_audit_log_repository.go -package=mocks AuditLogRepositoryIface
//go:generate mockgen -typed -source=./resource.go -destination=../mocks/mock_resource_repository.go -package=mocks ResourceRepositoryIface
//go:generate mockgen -typed -source=./repository.go -destination=../mocks/mock_transaction.go -package=mocks Transaction
