package repository

import (
	"context"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultCatalogTableName = "catalog"

const (
	catalogKeyUnits      = "units"
	catalogKeyCategories = "categories"
)

type catalogItem struct {
	ID     string   `dynamodbav:"id"`
	Values []string `dynamodbav:"values"`
}

// CatalogDynamoRepository stores the unit and category registries, one item
// per registry.
//
// Table requirements:
//   - PK: id (string), values "units" | "categories"
//
// An absent item answers with the seeded defaults; the first write persists
// defaults plus the new value.
type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) ListUnits(ctx context.Context) ([]string, error) {
	return r.list(ctx, catalogKeyUnits, entities.DefaultUnits)
}

func (r *CatalogDynamoRepository) AddUnit(ctx context.Context, nome string) error {
	return r.add(ctx, catalogKeyUnits, entities.DefaultUnits, nome)
}

func (r *CatalogDynamoRepository) ListCategories(ctx context.Context) ([]string, error) {
	return r.list(ctx, catalogKeyCategories, entities.DefaultCategories)
}

func (r *CatalogDynamoRepository) AddCategory(ctx context.Context, nome string) error {
	return r.add(ctx, catalogKeyCategories, entities.DefaultCategories, nome)
}

func (r *CatalogDynamoRepository) list(ctx context.Context, key string, defaults []string) ([]string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return append([]string(nil), defaults...), nil
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return it.Values, nil
}

func (r *CatalogDynamoRepository) add(ctx context.Context, key string, defaults []string, nome string) error {
	values, err := r.list(ctx, key, defaults)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(catalogItem{ID: key, Values: append(values, nome)})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
